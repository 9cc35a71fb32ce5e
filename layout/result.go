package layout

// Result is the derived, view-mode-specific visual mapping for one object.
// Real astronomical properties are never touched; switching modes only ever
// produces a different Result
type Result struct {
	// VisualRadius is the on-screen body radius in scene units.
	// For belts it is the band half-width
	VisualRadius float64

	// OrbitDistance is the distance from the parent in scene units.
	// For belts it is the band center; zero for roots
	OrbitDistance float64

	// Belt bounds in scene units; valid when IsBelt
	BeltInner float64
	BeltOuter float64
	IsBelt    bool
}

// Outer returns the outermost scene-unit extent the object occupies
// around its parent
func (r Result) Outer() float64 {
	if r.IsBelt {
		return r.BeltOuter
	}
	return r.OrbitDistance
}
