package celestial

import (
	"math"
)

// Stellar zone calculation. Pure functions, no dependencies.
// Distances are in AU around the host star

const sunTemperatureK = 5772

// Zones holds the derived orbital bands of interest around a star
type Zones struct {
	HabitableInnerAU float64
	HabitableOuterAU float64
	SnowLineAU       float64
}

// Luminosity returns stellar luminosity in solar units. Uses the explicit
// property when present, otherwise Stefan-Boltzmann from radius and
// temperature. Returns 0 when neither is derivable
func Luminosity(p Properties) float64 {
	if p.LuminositySun > 0 {
		return p.LuminositySun
	}
	if p.RadiusKm <= 0 || p.TemperatureK <= 0 {
		return 0
	}
	const sunRadiusKm = 695700.0
	r := p.RadiusKm / sunRadiusKm
	t := p.TemperatureK / sunTemperatureK
	return r * r * t * t * t * t
}

// StellarZones computes habitable-zone bounds and the snow line for a star.
// Conservative flux limits: inner at 1.1 S⊙, outer at 0.53 S⊙; snow line
// at 2.7 AU scaled by sqrt(L). A zero-luminosity input yields zero zones
func StellarZones(p Properties) Zones {
	lum := Luminosity(p)
	if lum <= 0 {
		return Zones{}
	}
	sqrtL := math.Sqrt(lum)
	return Zones{
		HabitableInnerAU: math.Sqrt(lum / 1.1),
		HabitableOuterAU: math.Sqrt(lum / 0.53),
		SnowLineAU:       2.7 * sqrtL,
	}
}
