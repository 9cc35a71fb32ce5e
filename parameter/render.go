package parameter

// Terminal presentation tuning

const (
	// CellAspect compensates terminal cells being roughly twice as tall
	// as wide; world depth shrinks by this factor on screen
	CellAspect = 0.5

	// OrbitSamples is the point count for tracing one orbit ring
	OrbitSamples = 128

	// ProjectionMargin widens the camera standoff so framed content
	// keeps a border inside the screen edge
	ProjectionMargin = 1.1
)
