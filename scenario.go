package orrery

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// radians converts a degree value to radians; the
// default scenario's inclinations are all listed in degrees in the
// source data this was grounded on.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// DefaultScenario builds the Sun, the eight planets, Earth's Moon,
// Mars's two moons, Pluto, and a low-Earth-orbit station.
// Each planet is placed in orbit around the Sun; each moon is placed
// in orbit around its parent planet, so callers must place parents
// before children (the Sun first, then Earth and Mars, then their
// moons).
func DefaultScenario() []Body {
	sun := newBody("Sun", SolarMass, SolarRadius, Vector3{}, Vector3{}, Color{R: 255, G: 255, B: 0}, 100)

	bodies := []Body{sun}

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Mercury",
		Mass:              3.3011e23,
		Radius:            2439.7e3,
		Method:            OrbitRadius(0.387098 * AU),
		Inclination:       FixedInclination(radians(7.005)),
		PositiveYRotation: true,
		Color:             Color{R: 255, G: 0, B: 0},
		Magnification:     2e7,
	}, sun))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Venus",
		Mass:              4.8675e24,
		Radius:            6051.8e3,
		Method:            OrbitRadius(0.723332 * AU),
		Inclination:       FixedInclination(radians(3.39458)),
		PositiveYRotation: true,
		Color:             Color{R: 0, G: 255, B: 0},
		Magnification:     2e7,
	}, sun))

	earth := PlaceOnOrbit(OrbitSpec{
		Name:              "Earth",
		Mass:              5.972168e24,
		Radius:            6371.0e3,
		Method:            OrbitRadius(AU),
		Inclination:       FixedInclination(0),
		PositiveYRotation: true,
		Color:             Color{R: 0, G: 0, B: 255},
		Magnification:     1e7,
	}, sun)
	bodies = append(bodies, earth)

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Mars",
		Mass:              6.4171e23,
		Radius:            3389.5e3,
		Method:            OrbitRadius(1.52368055 * AU),
		Inclination:       FixedInclination(radians(1.850)),
		PositiveYRotation: true,
		Color:             Color{R: 255, G: 50, B: 0},
		Magnification:     2e7,
	}, sun))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Jupiter",
		Mass:              1.8982e27,
		Radius:            69911e3,
		Method:            OrbitRadius(5.2038 * AU),
		Inclination:       FixedInclination(radians(1.303)),
		PositiveYRotation: true,
		Color:             Color{R: 216, G: 202, B: 157},
		Magnification:     2e7,
	}, sun))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Saturn",
		Mass:              5.6834e26,
		Radius:            58232e3,
		Method:            OrbitRadius(9.5826 * AU),
		Inclination:       FixedInclination(radians(2.485)),
		PositiveYRotation: true,
		Color:             Color{R: 191, G: 189, B: 175},
		Magnification:     2e7,
	}, sun))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Uranus",
		Mass:              8.681e25,
		Radius:            25362e3,
		Method:            OrbitRadius(19.19126 * AU),
		Inclination:       FixedInclination(radians(0.773)),
		PositiveYRotation: true,
		Color:             Color{R: 209, G: 231, B: 231},
		Magnification:     2e7,
	}, sun))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Neptune",
		Mass:              1.02413e26,
		Radius:            24622e3,
		Method:            OrbitRadius(30.07 * AU),
		Inclination:       FixedInclination(radians(1.770)),
		PositiveYRotation: true,
		Color:             Color{R: 39, G: 70, B: 135},
		Magnification:     2e7,
	}, sun))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Pluto",
		Mass:              1.303e22,
		Radius:            2376.6e3,
		Method:            OrbitRadius(39.482 * AU),
		Inclination:       FixedInclination(radians(17.16)),
		PositiveYRotation: true,
		Color:             Color{R: 190, G: 190, B: 255},
		Magnification:     2e7,
	}, sun))

	var marsBody Body
	for _, b := range bodies {
		if b.Name == "Mars" {
			marsBody = b
			break
		}
	}

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Phobos",
		Mass:              1.0659e16,
		Radius:            11.2667e3,
		Method:            OrbitRadius(9376e3),
		Inclination:       FixedInclination(radians(26.04)),
		PositiveYRotation: true,
		Color:             Color{R: 200, G: 200, B: 200},
		Magnification:     2e11,
	}, marsBody))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Deimos",
		Mass:              1.4762e15,
		Radius:            6.2e3,
		Method:            OrbitRadius(23463.2e3),
		Inclination:       FixedInclination(radians(27.58)),
		PositiveYRotation: true,
		Color:             Color{R: 150, G: 150, B: 150},
		Magnification:     2e11,
	}, marsBody))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "Moon",
		Mass:              7.342e22,
		Radius:            1737.4e3,
		Method:            OrbitRadius(384399e3),
		Inclination:       FixedInclination(radians(5.145)),
		PositiveYRotation: true,
		Color:             Color{R: 255, G: 255, B: 255},
		Magnification:     1e7,
	}, earth))

	bodies = append(bodies, PlaceOnOrbit(OrbitSpec{
		Name:              "International Space Station",
		Mass:              450.0e3,
		Radius:            100,
		Method:            OrbitRadius(6371.0e3 + 418000),
		Inclination:       FixedInclination(radians(51.64)),
		PositiveYRotation: true,
		Color:             Color{R: 0, G: 0, B: 160},
		Magnification:     1e7,
	}, earth))

	return bodies
}

// earthBulkDensity is Earth's mass divided by the cube of its radius
// (proportional to its bulk density), used to size a randomly-generated
// planet from its randomly-drawn mass.
var earthBulkDensity = 5.972168e24 / math.Pow(6371.0e3, 3)

// RandomPlanetSpec returns an OrbitSpec for a single planet with a
// uniformly-random mass (between Pluto's and roughly four Jupiter
// masses), a radius consistent with Earth's bulk density, a
// semi-major axis between 0.5 and 20 AU, an inclination of up to 30
// degrees, and a uniformly-random color. It does not place the
// planet; call PlaceOnOrbit with the intended target to do that.
func RandomPlanetSpec() OrbitSpec {
	mass := distuv.Uniform{Min: 1.303e22, Max: 6.8982e27}.Rand()
	radius := math.Cbrt(mass / earthBulkDensity)
	semiMajorAxis := distuv.Uniform{Min: 0.5, Max: 20}.Rand() * AU

	colorOf := func() uint8 {
		return uint8(distuv.Uniform{Min: 0, Max: 255}.Rand())
	}

	return OrbitSpec{
		Name:              fmt.Sprintf("planet-%d", int(distuv.Uniform{Min: 0, Max: 1000000}.Rand())),
		Mass:              mass,
		Radius:            radius,
		Method:            OrbitRadius(semiMajorAxis),
		Inclination:       RandomInclination(radians(30)),
		PositiveYRotation: true,
		Color:             Color{R: colorOf(), G: colorOf(), B: colorOf()},
		Magnification:     1e7,
	}
}
