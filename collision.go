package orrery

import (
	"math"

	"github.com/google/uuid"
)

// resolveCollision performs a perfectly inelastic merge of the bodies
// at indices p and q (p≠q, order unconstrained): momentum is
// conserved, the heavier body's position moves to the post-merge
// center of mass, and its radius is scaled by the cube root of the
// mass ratio computed *before* mass is incremented (a deliberate,
// preserved modeling choice — see DESIGN.md). The lighter body is
// removed from the returned list; the heavier body's identity and id
// survive.
func resolveCollision(bodies []Body, p, q int) ([]Body, survivor) {
	h, l := p, q
	if bodies[q].Mass > bodies[p].Mass {
		h, l = q, p
	}

	heavy := bodies[h]
	light := bodies[l]
	totalMass := heavy.Mass + light.Mass

	heavy.Velocity = heavy.Velocity.Scale(heavy.Mass).Add(light.Velocity.Scale(light.Mass)).Scale(1 / totalMass)
	heavy.Position = heavy.Position.Add(light.Position.Sub(heavy.Position).Scale(light.Mass / totalMass))
	heavy.Radius = heavy.Radius * math.Cbrt(totalMass/heavy.Mass)
	heavy.Mass = totalMass

	out := make([]Body, 0, len(bodies)-1)
	out = append(out, bodies[:l]...)
	out = append(out, bodies[l+1:]...)
	if l < h {
		h--
	}
	out[h] = heavy

	return out, survivor{SurvivorID: heavy.ID, AbsorbedID: light.ID, AbsorbedName: light.Name, SurvivorName: heavy.Name}
}

// survivor describes the outcome of a merge, for logging.
type survivor struct {
	SurvivorID, AbsorbedID     uuid.UUID
	SurvivorName, AbsorbedName string
}
