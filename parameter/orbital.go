package parameter

// Orbital animation tuning

const (
	// PositionEpsilon is the minimum container move in scene units before
	// a transform write is applied. Smaller deltas accumulate as pure
	// angle state; suppresses sub-pixel transform churn (visual vibration)
	PositionEpsilon = 0.005

	// SimDaysPerSecond compresses simulated orbital time: one wall-clock
	// second at multiplier 1.0 advances orbits by this many days
	SimDaysPerSecond = 1.0
)
