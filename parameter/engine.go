package parameter

import "time"

// Engine loop tuning

const (
	// TickRate is the target simulation steps per second
	TickRate = 60

	// IntentQueueSize bounds pending UI intents; oldest are dropped on
	// overflow rather than blocking the input goroutine
	IntentQueueSize = 64

	// LayoutTimeout bounds a single layout computation. On expiry the
	// caller keeps the last good layout and surfaces an error state
	LayoutTimeout = 2 * time.Second

	// DefaultTimeMultiplier is the initial simulated-time speedup
	DefaultTimeMultiplier = 1.0

	// TimeMultiplierMin/Max bound the user-adjustable range
	TimeMultiplierMin = 0.0625
	TimeMultiplierMax = 1024.0
)
