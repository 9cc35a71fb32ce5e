package engine

import (
	"sync"
	"time"
)

// TimeProvider provides the real system time with monotonic clock readings
// Used for camera animation timing, which should not pause with the sim
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider is a controllable time source for tests
type ManualTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTimeProvider creates a manual provider at the given start time
func NewManualTimeProvider(startTime time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{currentTime: startTime}
}

// Now returns the current manual time
func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time
func (m *ManualTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
