package orrery

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector3 is a 3-component vector in SI units (meters, m/s or m/s^2
// depending on context).
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the inner product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v×o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// DistanceTo returns ‖v-o‖.
func (v Vector3) DistanceTo(o Vector3) float64 {
	return v.Sub(o).Norm()
}

// Unit returns v/‖v‖, or the zero vector if v is (numerically) zero.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-300) {
		return Vector3{}
	}
	return v.Scale(1 / n)
}

// EqualWithinAbs reports whether v and o are equal to within an
// absolute tolerance on each component, per-axis, matching the
// tolerance helpers used throughout the invariant tests.
func (v Vector3) EqualWithinAbs(o Vector3, tol float64) bool {
	return floats.EqualWithinAbs(v.X, o.X, tol) &&
		floats.EqualWithinAbs(v.Y, o.Y, tol) &&
		floats.EqualWithinAbs(v.Z, o.Z, tol)
}
