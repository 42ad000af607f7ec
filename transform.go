package orrery

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rotY returns the 3x3 rotation matrix about the Y axis, generalized
// from the teacher's R2 Euler-angle rotation (rotation.go) to plain
// Cartesian use rather than orbital-element frames.
func rotY(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// rotZ returns the 3x3 rotation matrix about the Z axis, generalized
// from the teacher's R3 rotation (rotation.go).
func rotZ(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// mulVec multiplies a 3x3 matrix with a Vector3, matching the
// teacher's MxV33 helper (rotation.go) generalized to Vector3.
func mulVec(m *mat.Dense, v Vector3) Vector3 {
	in := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m, in)
	return Vector3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// orientation composes the two Y-rotations and the single Z-rotation
// used by the orbit builder into one matrix, applied to both position
// and velocity before translation into the inertial frame.
func orientation(inclination, ascendingNode, phase float64) *mat.Dense {
	var m mat.Dense
	m.Mul(rotY(ascendingNode), rotZ(inclination))
	var out mat.Dense
	out.Mul(&m, rotY(phase))
	return &out
}
