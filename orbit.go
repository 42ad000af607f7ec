package orrery

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// OrbitalMethod selects how a circular orbit's radius is specified:
// either directly, or by the desired orbital speed.
type OrbitalMethod struct {
	radius  float64
	speed   float64
	bySpeed bool
}

// OrbitRadius places a satellite on a circular orbit of the given
// radius (meters).
func OrbitRadius(r float64) OrbitalMethod { return OrbitalMethod{radius: r} }

// OrbitSpeed places a satellite on the circular orbit whose speed is v
// (m/s).
func OrbitSpeed(v float64) OrbitalMethod { return OrbitalMethod{speed: v, bySpeed: true} }

// Inclination selects a fixed or uniformly-random orbital plane tilt,
// in radians.
type Inclination struct {
	fixed    float64
	max      float64
	isRandom bool
}

// FixedInclination returns a constant inclination angle (radians).
func FixedInclination(a float64) Inclination { return Inclination{fixed: a} }

// RandomInclination draws uniformly from [0, a] radians on each call.
func RandomInclination(a float64) Inclination { return Inclination{max: a, isRandom: true} }

// OrbitSpec describes a body to be placed in orbit around a target.
type OrbitSpec struct {
	Name              string
	Mass              float64
	Radius            float64
	Method            OrbitalMethod
	Inclination       Inclination
	PositiveYRotation bool
	Color             Color
	Magnification     float64
}

// PlaceOnOrbit returns a Body on a closed circular orbit around
// target: derive speed/radius from the target's mass, build the
// orbit in the target's rest frame on the +Z axis, rotate it about Y
// by a random orbital phase, tilt it about Z by the inclination,
// rotate it about Y by a random ascending node, then translate into
// the inertial frame.
func PlaceOnOrbit(spec OrbitSpec, target Body) Body {
	speed, radius := circularSpeedAndRadius(spec.Method, target.Mass)
	if !spec.PositiveYRotation {
		speed = -speed
	}

	position := Vector3{Z: radius}
	velocity := Vector3{X: speed}

	inclination := spec.Inclination.fixed
	if spec.Inclination.isRandom {
		inclination = distuv.Uniform{Min: 0, Max: spec.Inclination.max}.Rand()
	}
	phase1 := distuv.Uniform{Min: 0, Max: 2 * math.Pi}.Rand()
	phase2 := distuv.Uniform{Min: 0, Max: 2 * math.Pi}.Rand()

	orient := orientation(inclination, phase1, phase2)
	position = mulVec(orient, position).Add(target.Position)
	velocity = mulVec(orient, velocity).Add(target.Velocity)

	return newBody(spec.Name, spec.Mass, spec.Radius, position, velocity, spec.Color, spec.Magnification)
}

func circularSpeedAndRadius(m OrbitalMethod, targetMass float64) (speed, radius float64) {
	if m.bySpeed {
		return m.speed, G * targetMass / (m.speed * m.speed)
	}
	return math.Sqrt(G * targetMass / m.radius), m.radius
}
