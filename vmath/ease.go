package vmath

// Easing curves for camera animation
// All take progress in [0, 1] and return eased progress in [0, 1]

type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 {
	return Clamp(t, 0, 1)
}

// EaseOut is a cubic ease-out: fast start, gentle settle
func EaseOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseInOut is a cubic ease-in-out
func EaseInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	inv := -2*t + 2
	return 1 - inv*inv*inv/2
}

// EaseLeap accelerates hard through the first 30% of the animation, then
// settles on a cubic tail. Tuned for snappy focus jumps that still land softly
func EaseLeap(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.3 {
		return t * t * 3.33
	}
	tail := (t - 0.3) / 0.7
	inv := 1 - tail
	return 0.33 + 0.67*(1-inv*inv*inv)
}

// EaseByName resolves a named curve, defaulting to EaseInOut for unknown names
func EaseByName(name string) EaseFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "easeOut":
		return EaseOut
	case "easeInOut":
		return EaseInOut
	case "leap":
		return EaseLeap
	default:
		return EaseInOut
	}
}
