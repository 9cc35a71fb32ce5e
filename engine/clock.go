package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/starchart/parameter"
)

// Clock tracks pause state and the simulated-time multiplier. Camera
// animations deliberately run on real time instead (they are UI motion,
// not simulation), so pausing freezes orbits without freezing transitions
type Clock struct {
	mu         sync.RWMutex
	isPaused   atomic.Bool
	multiplier float64
}

// NewClock creates a running clock at the default multiplier
func NewClock() *Clock {
	return &Clock{multiplier: parameter.DefaultTimeMultiplier}
}

// Pause stops simulated time advancement
func (c *Clock) Pause() {
	c.isPaused.Store(true)
}

// Resume continues simulated time advancement
func (c *Clock) Resume() {
	c.isPaused.Store(false)
}

// TogglePause flips the pause state and returns the new state
func (c *Clock) TogglePause() bool {
	for {
		cur := c.isPaused.Load()
		if c.isPaused.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.isPaused.Load()
}

// Multiplier returns the current time multiplier
func (c *Clock) Multiplier() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.multiplier
}

// SetMultiplier sets the time multiplier, clamped to the allowed range
func (c *Clock) SetMultiplier(m float64) {
	if m < parameter.TimeMultiplierMin {
		m = parameter.TimeMultiplierMin
	}
	if m > parameter.TimeMultiplierMax {
		m = parameter.TimeMultiplierMax
	}
	c.mu.Lock()
	c.multiplier = m
	c.mu.Unlock()
}

// StepMultiplier doubles or halves the multiplier within range and
// returns the new value
func (c *Clock) StepMultiplier(up bool) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if up {
		c.multiplier *= 2
	} else {
		c.multiplier /= 2
	}
	if c.multiplier < parameter.TimeMultiplierMin {
		c.multiplier = parameter.TimeMultiplierMin
	}
	if c.multiplier > parameter.TimeMultiplierMax {
		c.multiplier = parameter.TimeMultiplierMax
	}
	return c.multiplier
}
