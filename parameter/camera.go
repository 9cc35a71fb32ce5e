package parameter

// Camera framing and follow tuning

const (
	// FollowEpsilon is the minimum per-frame target movement in scene units
	// before the rigid-follow translation fires. Compared against the
	// frame-to-frame delta, not an accumulator, so sustained sub-threshold
	// drift never produces camera motion
	FollowEpsilon = 0.001

	// ProfileSpanMultiplier pads the focal-to-outermost span when placing
	// the profile camera
	ProfileSpanMultiplier = 1.2

	// ProfileMinDistance is the camera distance floor for profile framing.
	// Spans below ProfileMinDistance/ProfileSpanMultiplier hit this floor,
	// preventing degenerate close-ups on isolated objects
	ProfileMinDistance = 20.0

	// BirdsEyeFallbackRadius frames an empty or unlayouted system
	BirdsEyeFallbackRadius = 50.0

	// FocusFallbackMultiplier stands in when a mode config leaves its
	// camera radius multiplier unset
	FocusFallbackMultiplier = 4.0

	// Focus distance boosts by coarse classification, applied on top of
	// the mode's camera radius multiplier. Stars dwarf everything else
	// visually, so they get the widest margin
	FocusStarBoost     = 2.0
	FocusGasGiantBoost = 1.375
)
