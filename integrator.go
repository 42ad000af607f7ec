package orrery

import "math"

// Method identifies an integration scheme: a symplectic drift-kick
// scheme of order 1-4, or classical RK4.
type Method struct {
	symplecticOrder uint8 // 0 means RK4
}

// Symplectic returns the order-k symplectic method, k in {1,2,3,4}.
func Symplectic(k uint8) Method {
	if k < 1 || k > 4 {
		panic("symplectic order must be in 1..4")
	}
	return Method{symplecticOrder: k}
}

// RK4 is the classical fourth-order Runge-Kutta method.
var RK4 = Method{symplecticOrder: 0}

// IsRK4 reports whether m is the RK4 method.
func (m Method) IsRK4() bool { return m.symplecticOrder == 0 }

func (m Method) String() string {
	if m.IsRK4() {
		return "RK4"
	}
	return [...]string{"", "Symplectic(1)", "Symplectic(2)", "Symplectic(3)", "Symplectic(4)"}[m.symplecticOrder]
}

// coefficient is one (c,d) drift/kick pair of a symplectic scheme.
type coefficient struct {
	C, D float64
}

// symplecticCoefficients returns the fixed (c,d) table for order k,
// per Yoshida's 1990 construction of higher-order symplectic
// integrators. Computed once per configuration change by the driver,
// not on every step.
func symplecticCoefficients(k uint8) []coefficient {
	switch k {
	case 1:
		return []coefficient{{1, 1}}
	case 2:
		return []coefficient{{0, 0.5}, {1, 0.5}}
	case 3:
		return []coefficient{
			{1, -1.0 / 24.0},
			{-2.0 / 3.0, 3.0 / 4.0},
			{2.0 / 3.0, 7.0 / 24.0},
		}
	case 4:
		w := math.Cbrt(2)
		denom := 2 * (2 - w)
		c1 := 1 / denom
		c2 := (1 - w) / denom
		d1 := 1 / (2 - w)
		d2 := -w / (2 - w)
		return []coefficient{
			{c1, d1},
			{c2, d2},
			{c2, d1},
			{c1, 0},
		}
	default:
		panic("symplectic order must be in 1..4")
	}
}

// rk4Step performs one classical RK4 step of duration dt over the
// full body set. Collisions are detected only at stage 0
// (unmodified positions); on collision there, the function returns
// immediately with no mutation of bodies, the caller's slice
// untouched, and a *CollisionError identifying the pair. On success
// it returns a new slice with every body advanced by dt and its
// acceleration cached.
func rk4Step(bodies []Body, dt, g float64) ([]Body, error) {
	n := len(bodies)

	type stage struct {
		velocity []Vector3
		dv       []Vector3
	}
	stages := make([]stage, 4)

	half := dt / 2
	offsets := [4]float64{0, half, half, dt}

	for s := 0; s < 4; s++ {
		positions := make([]Vector3, n)
		for i, b := range bodies {
			positions[i] = b.Position
		}
		if s >= 1 {
			prev := stages[s-1]
			for i := range positions {
				positions[i] = positions[i].Add(prev.velocity[i].Scale(offsets[s]))
			}
		}

		dv := make([]Vector3, n)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				diff := positions[j].Sub(positions[i])
				dist := diff.Norm()
				if s == 0 && dist <= bodies[i].Radius+bodies[j].Radius {
					return nil, &CollisionError{I: i, J: j}
				}
				mult := g / (dist * dist * dist)
				dv[i] = dv[i].Add(diff.Scale(mult * bodies[j].Mass))
				dv[j] = dv[j].Add(diff.Scale(-mult * bodies[i].Mass))
			}
		}

		velocity := make([]Vector3, n)
		for i := range velocity {
			if s == 0 {
				velocity[i] = bodies[i].Velocity
			} else {
				prev := stages[s-1]
				velocity[i] = bodies[i].Velocity.Add(prev.dv[i].Scale(offsets[s]))
			}
		}
		stages[s] = stage{velocity: velocity, dv: dv}
	}

	out := make([]Body, n)
	for i, b := range bodies {
		dxdt := stages[0].velocity[i].
			Add(stages[1].velocity[i].Add(stages[2].velocity[i]).Scale(2)).
			Add(stages[3].velocity[i]).
			Scale(1.0 / 6.0)
		dvdt := stages[0].dv[i].
			Add(stages[1].dv[i].Add(stages[2].dv[i]).Scale(2)).
			Add(stages[3].dv[i]).
			Scale(1.0 / 6.0)

		b.Position = b.Position.Add(dxdt.Scale(dt))
		b.Velocity = b.Velocity.Add(dvdt.Scale(dt))
		b.Acceleration = dvdt
		out[i] = b
	}
	return out, nil
}
