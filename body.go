package orrery

import "github.com/google/uuid"

// Color is a rendering hint, opaque to the physics core.
type Color struct {
	R, G, B uint8
}

// Body is a single mass point evolving under mutual gravity.
// Mass and radius are assumed strictly positive for the lifetime of
// the body; Acceleration holds the last value computed by the force
// kernel and may be zero before the first step.
type Body struct {
	ID            uuid.UUID
	Name          string
	Mass          float64
	Radius        float64
	Position      Vector3
	Velocity      Vector3
	Acceleration  Vector3
	Color         Color
	Magnification float64
}

// Clone returns a deep (value) copy of b, suitable for publication
// into a snapshot without aliasing the driver's working list.
func (b Body) Clone() Body {
	return b
}

// Snapshot is a replaceable list of body records. It replaces, rather
// than merges with, a consumer's prior view.
type Snapshot []Body

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

func newBody(name string, mass, radius float64, pos, vel Vector3, color Color, magnification float64) Body {
	return Body{
		ID:            uuid.New(),
		Name:          name,
		Mass:          mass,
		Radius:        radius,
		Position:      pos,
		Velocity:      vel,
		Color:         color,
		Magnification: magnification,
	}
}
