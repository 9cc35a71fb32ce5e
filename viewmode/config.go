package viewmode

import (
	"time"
)

// ID identifies a registered view mode
type ID string

const (
	Realistic    ID = "realistic"
	Navigational ID = "navigational"
	Profile      ID = "profile"
)

// OrbitRule selects how orbit distances derive from real semi-major axes
type OrbitRule uint8

const (
	// OrbitProportional preserves relative spacing: distance = a * SystemScale
	OrbitProportional OrbitRule = iota
	// OrbitEquidistant places the Nth child of a parent at N * FixedSpacing,
	// then rescales the whole system to match proportional extent
	OrbitEquidistant
)

// ObjectScaling holds per-type visual size multipliers applied after
// sub-linear radius compression
type ObjectScaling struct {
	Star     float64
	Planet   float64
	Moon     float64
	GasGiant float64
	Asteroid float64
	Default  float64
}

// ViewingAngles are camera elevation defaults in degrees
type ViewingAngles struct {
	DefaultElevationDeg  float64
	BirdsEyeElevationDeg float64
}

// Animation configures camera transition timing per mode
type Animation struct {
	FocusDuration    time.Duration
	BirdsEyeDuration time.Duration
	Easing           string // name resolved via vmath.EaseByName
}

// CameraConfig holds camera distance and framing defaults for a mode
type CameraConfig struct {
	RadiusMultiplier      float64
	MinDistanceMultiplier float64
	MaxDistanceMultiplier float64
	AbsoluteMinDistance   float64
	AbsoluteMaxDistance   float64
	Angles                ViewingAngles
	Animation             Animation
}

// Config is an immutable view-mode record. Created once at registration,
// read-only thereafter. Adding a mode is pure data registration; no
// consumer code changes
type Config struct {
	ID   ID
	Name string

	// RadiusExponent is the sub-linear compression k in realRadius^k.
	// Smaller k compresses harder
	RadiusExponent float64
	// RadiusScale maps compressed radii to scene units
	RadiusScale   float64
	ObjectScaling ObjectScaling

	OrbitRule OrbitRule
	// SystemScale maps AU to scene units under OrbitProportional and
	// anchors the equidistant rescale target
	SystemScale float64
	// FixedSpacing is the per-rank gap in scene units under OrbitEquidistant
	FixedSpacing float64
	// Linear collapses layout to a single axis for diagrammatic viewing
	Linear bool

	Camera CameraConfig
}

// ScaleFor returns the size multiplier for an object-type key. Keys follow
// celestial classification/geometry: "star", "planet", "moon", "gas_giant",
// "asteroid"; anything else gets Default
func (c Config) ScaleFor(kind string) float64 {
	switch kind {
	case "star":
		return c.ObjectScaling.Star
	case "planet":
		return c.ObjectScaling.Planet
	case "moon":
		return c.ObjectScaling.Moon
	case "gas_giant":
		return c.ObjectScaling.GasGiant
	case "asteroid", "belt":
		return c.ObjectScaling.Asteroid
	default:
		return c.ObjectScaling.Default
	}
}
