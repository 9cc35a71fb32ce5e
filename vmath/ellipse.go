package vmath

import (
	"math"
)

// Parametric ellipse utilities for orbital motion
// Orbits are kinematic: position follows the conic section directly,
// no force integration

// EllipseRadius returns the orbital radius at true-anomaly-like angle theta
// a: semi-major axis (scene units), e: eccentricity in [0, 1)
func EllipseRadius(a, e, theta float64) float64 {
	if e == 0 {
		return a
	}
	return a * (1 - e*e) / (1 + e*math.Cos(theta))
}

// OrbitPoint returns the 3D offset from the orbit focus for angle theta
// The flat in-plane Y component is tilted out of the X/Z plane by incl (radians)
func OrbitPoint(a, e, incl, theta float64) Vec3 {
	r := EllipseRadius(a, e, theta)
	x := r * math.Cos(theta)
	yFlat := r * math.Sin(theta)
	return Vec3{
		X: x,
		Y: yFlat * math.Sin(incl),
		Z: yFlat * math.Cos(incl),
	}
}

// BeltPoint returns a point on a belt ring at the given radius and angle,
// tilted by incl like OrbitPoint
func BeltPoint(radius, incl, theta float64) Vec3 {
	x := radius * math.Cos(theta)
	yFlat := radius * math.Sin(theta)
	return Vec3{
		X: x,
		Y: yFlat * math.Sin(incl),
		Z: yFlat * math.Cos(incl),
	}
}

// AngularRate returns the angle advance in radians per simulated day for
// an orbital period in Earth days. A zero or negative period degrades to
// a one-year default rather than dividing by zero
func AngularRate(periodDays float64) float64 {
	if periodDays <= 0 {
		periodDays = 365.25
	}
	return TwoPi / periodDays
}
