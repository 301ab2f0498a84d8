package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manual clock for loop tests
// Sleep never blocks: it moves the clock forward and is recorded
type MockTimeProvider struct {
	mu     sync.Mutex
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

// NewMockTimeProvider creates a clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// SetStep makes every Now call advance the clock by d after reading it,
// standing in for work done between clock reads
func (m *MockTimeProvider) SetStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = d
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.step)
	return t
}

// Advance moves the clock forward without recording a sleep
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleep advances the clock by d; non-positive durations are ignored
func (m *MockTimeProvider) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.sleeps = append(m.sleeps, d)
}

// Sleeps returns each recorded Sleep duration in call order
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

// Slept returns the sum of recorded sleeps
func (m *MockTimeProvider) Slept() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total time.Duration
	for _, d := range m.sleeps {
		total += d
	}
	return total
}
