package engine

import "time"

// TimeProvider paces the game loop
// Real play uses the monotonic clock; tests inject MockTimeProvider
type TimeProvider interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d; non-positive durations return immediately
func (p *MonotonicTimeProvider) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
