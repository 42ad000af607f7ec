package orrery

// Physical constants.
const (
	// G is the Newtonian gravitational constant, m^3 kg^-1 s^-2.
	G = 6.6743e-11
	// AU is one astronomical unit, in meters.
	AU = 1.495978707e11
	// SolarMass is the Sun's mass, in kilograms.
	SolarMass = 1.98847e30
	// SolarRadius is the Sun's radius, in meters.
	SolarRadius = 6.957e8
	// SecondsPerDay is the number of seconds in a day.
	SecondsPerDay = 86400.0
)
