package orrery

import (
	"math"
	"testing"
)

func TestSymplecticPanicsOnBadOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range symplectic order")
		}
	}()
	Symplectic(5)
}

func TestSymplecticCoefficientSums(t *testing.T) {
	for k := uint8(1); k <= 4; k++ {
		coeffs := symplecticCoefficients(k)
		var sumC, sumD float64
		for _, c := range coeffs {
			sumC += c.C
			sumD += c.D
		}
		if math.Abs(sumC-1) > 1e-12 {
			t.Errorf("order %d: sum(C) = %f, want 1", k, sumC)
		}
		if math.Abs(sumD-1) > 1e-12 {
			t.Errorf("order %d: sum(D) = %f, want 1", k, sumD)
		}
	}
}

func TestMethodString(t *testing.T) {
	if got := RK4.String(); got != "RK4" {
		t.Fatalf("RK4.String() = %q", got)
	}
	if got := Symplectic(4).String(); got != "Symplectic(4)" {
		t.Fatalf("Symplectic(4).String() = %q", got)
	}
}

func TestRK4StepCollisionLeavesBodiesUntouched(t *testing.T) {
	bodies := twoBody(1.5, 1, 1)
	original := append([]Body(nil), bodies...)

	_, err := rk4Step(bodies, 1, G)
	var ce *CollisionError
	if err == nil {
		t.Fatal("expected collision error")
	}
	if ce, _ = err.(*CollisionError); ce == nil {
		t.Fatalf("expected *CollisionError, got %T", err)
	}

	for i := range bodies {
		if bodies[i] != original[i] {
			t.Fatalf("input slice mutated at index %d", i)
		}
	}
}

func TestRK4StepConservesCenterOfMassVelocity(t *testing.T) {
	bodies := twoBody(1e8, 5.972e24, 7.342e22)
	out, err := rk4Step(bodies, 10, G)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	momentumBefore := bodies[0].Velocity.Scale(bodies[0].Mass).Add(bodies[1].Velocity.Scale(bodies[1].Mass))
	momentumAfter := out[0].Velocity.Scale(out[0].Mass).Add(out[1].Velocity.Scale(out[1].Mass))
	if momentumBefore.DistanceTo(momentumAfter) > 1e-3 {
		t.Fatalf("momentum drifted: before=%+v after=%+v", momentumBefore, momentumAfter)
	}
}
