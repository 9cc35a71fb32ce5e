package vmath

import (
	"math"
)

const TwoPi = 2 * math.Pi

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle normalizes an angle to [0, 2π)
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	return theta
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
