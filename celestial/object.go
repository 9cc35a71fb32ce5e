package celestial

import (
	"github.com/lixenwraith/starchart/vmath"
)

// Classification is the semantic kind of a celestial object
type Classification string

const (
	ClassStar        Classification = "star"
	ClassPlanet      Classification = "planet"
	ClassDwarfPlanet Classification = "dwarf-planet"
	ClassMoon        Classification = "moon"
	ClassBelt        Classification = "belt"
	ClassJumpPoint   Classification = "jump-point"
	ClassStation     Classification = "station"
	ClassBlackHole   Classification = "black-hole"
)

// GeometryType is a rendering-shape hint, independent of classification
// A dwarf planet may still render as terrestrial
type GeometryType string

const (
	GeomTerrestrial GeometryType = "terrestrial"
	GeomGasGiant    GeometryType = "gas_giant"
	GeomStar        GeometryType = "star"
	GeomBelt        GeometryType = "belt"
	GeomCompact     GeometryType = "compact"
)

// Properties holds real physical attributes in astronomical units of measure
// These are authoritative and never mutated by any view mode
type Properties struct {
	MassKg        float64 `json:"mass_kg,omitempty"`
	RadiusKm      float64 `json:"radius_km"`
	TemperatureK  float64 `json:"temperature_k,omitempty"`
	LuminositySun float64 `json:"luminosity_sun,omitempty"` // solar luminosities
	AtmospherePct float64 `json:"atmosphere_pct,omitempty"`
	Rings         bool    `json:"rings,omitempty"`
}

// Orbit is a Keplerian orbit record. Distances in AU, angles in degrees,
// period in Earth days
type Orbit struct {
	Parent          string  `json:"parent"`
	SemiMajorAxisAU float64 `json:"semi_major_axis_au"`
	Eccentricity    float64 `json:"eccentricity,omitempty"`
	InclinationDeg  float64 `json:"inclination_deg,omitempty"`
	PeriodDays      float64 `json:"orbital_period_days"`
}

// Belt describes an annular region (asteroid belt, ring of debris)
type Belt struct {
	Parent         string  `json:"parent"`
	InnerRadiusAU  float64 `json:"inner_radius_au"`
	OuterRadiusAU  float64 `json:"outer_radius_au"`
	InclinationDeg float64 `json:"inclination_deg,omitempty"`
	Eccentricity   float64 `json:"eccentricity,omitempty"`
}

// Object is a node in a system's object tree. Objects with neither Orbit
// nor Belt are roots and may carry an absolute Position
type Object struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Class      Classification `json:"classification"`
	Geometry   GeometryType   `json:"geometry_type"`
	Properties Properties     `json:"properties"`
	Orbit      *Orbit         `json:"orbit,omitempty"`
	Belt       *Belt          `json:"belt,omitempty"`
	Position   *vmath.Vec3    `json:"position,omitempty"`
}

// ParentID returns the parent object id, or "" for roots
func (o *Object) ParentID() string {
	switch {
	case o.Orbit != nil:
		return o.Orbit.Parent
	case o.Belt != nil:
		return o.Belt.Parent
	default:
		return ""
	}
}

// IsRoot reports whether the object has no orbital parent
func (o *Object) IsRoot() bool {
	return o.Orbit == nil && o.Belt == nil
}

// IsBelt reports whether the object occupies an annular region rather
// than a point orbit
func (o *Object) IsBelt() bool {
	return o.Belt != nil
}
