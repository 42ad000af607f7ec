package orrery

import (
	"math"
	"testing"
)

func TestVector3AddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -1, 0.5}
	sum := a.Add(b)
	if sum != (Vector3{5, 1, 3.5}) {
		t.Fatalf("Add: got %+v", sum)
	}
	if diff := sum.Sub(b); diff != a {
		t.Fatalf("Sub: got %+v, want %+v", diff, a)
	}
}

func TestVector3DotCross(t *testing.T) {
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	if got := x.Dot(y); got != 0 {
		t.Fatalf("Dot of orthogonal axes = %f, want 0", got)
	}
	z := x.Cross(y)
	if !z.EqualWithinAbs(Vector3{0, 0, 1}, 1e-15) {
		t.Fatalf("Cross(x,y) = %+v, want (0,0,1)", z)
	}
}

func TestVector3Norm(t *testing.T) {
	v := Vector3{3, 4, 0}
	if got := v.Norm(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Norm = %f, want 5", got)
	}
}

func TestVector3Unit(t *testing.T) {
	v := Vector3{0, 0, 2}
	u := v.Unit()
	if !u.EqualWithinAbs(Vector3{0, 0, 1}, 1e-12) {
		t.Fatalf("Unit = %+v, want (0,0,1)", u)
	}
	if got := (Vector3{}).Unit(); got != (Vector3{}) {
		t.Fatalf("Unit of zero vector = %+v, want zero", got)
	}
}

func TestVector3DistanceTo(t *testing.T) {
	a := Vector3{0, 0, 0}
	b := Vector3{1, 1, 1}
	want := math.Sqrt(3)
	if got := a.DistanceTo(b); math.Abs(got-want) > 1e-12 {
		t.Fatalf("DistanceTo = %f, want %f", got, want)
	}
}
