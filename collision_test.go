package orrery

import (
	"math"
	"testing"
)

func TestResolveCollisionMomentumAndMass(t *testing.T) {
	bodies := []Body{
		{Name: "heavy", Mass: 1e6, Radius: 10, Position: Vector3{}, Velocity: Vector3{X: 1}},
		{Name: "light", Mass: 1e4, Radius: 2, Position: Vector3{X: 5}, Velocity: Vector3{X: -3}},
	}

	merged, sv := resolveCollision(bodies, 0, 1)
	if len(merged) != 1 {
		t.Fatalf("expected 1 body after merge, got %d", len(merged))
	}

	survivor := merged[0]
	wantMass := 1e6 + 1e4
	if math.Abs(survivor.Mass-wantMass) > 1e-6 {
		t.Fatalf("mass = %f, want %f", survivor.Mass, wantMass)
	}

	wantRadius := 10 * math.Cbrt(wantMass/1e6)
	if math.Abs(survivor.Radius-wantRadius) > 1e-9 {
		t.Fatalf("radius = %.12f, want %.12f", survivor.Radius, wantRadius)
	}

	wantVX := (1e6*1 + 1e4*-3) / wantMass
	if math.Abs(survivor.Velocity.X-wantVX) > 1e-9 {
		t.Fatalf("velocity.X = %f, want %f", survivor.Velocity.X, wantVX)
	}

	if sv.SurvivorName != "heavy" || sv.AbsorbedName != "light" {
		t.Fatalf("survivor=%s absorbed=%s, want heavy/light", sv.SurvivorName, sv.AbsorbedName)
	}
}

func TestResolveCollisionSurvivorIsHeavier(t *testing.T) {
	bodies := []Body{
		{Name: "small", Mass: 1, Radius: 1},
		{Name: "big", Mass: 100, Radius: 1},
	}
	merged, sv := resolveCollision(bodies, 0, 1)
	if merged[0].Name != "big" {
		t.Fatalf("survivor = %s, want big", merged[0].Name)
	}
	if sv.SurvivorName != "big" {
		t.Fatalf("survivor name in log = %s, want big", sv.SurvivorName)
	}
}

func TestResolveCollisionPreservesOtherBodies(t *testing.T) {
	bodies := []Body{
		{Name: "a", Mass: 1, Radius: 1},
		{Name: "b", Mass: 1, Radius: 1},
		{Name: "c", Mass: 5, Radius: 1},
	}
	merged, _ := resolveCollision(bodies, 0, 1)
	if len(merged) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(merged))
	}
	found := false
	for _, b := range merged {
		if b.Name == "c" {
			found = true
		}
	}
	if !found {
		t.Fatal("uninvolved body c was lost during merge")
	}
}
