package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven clock for deterministic tests
// Readings never go backwards
type MockTimeProvider struct {
	start   time.Time
	elapsed atomic.Int64 // nanoseconds since start
}

// NewMockTimeProvider creates a mock clock reading start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(m.Elapsed())
}

// Elapsed returns the total time advanced since creation
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.elapsed.Load())
}

// SetTime jumps to t, ignored when t is not after the current reading
func (m *MockTimeProvider) SetTime(t time.Time) {
	target := int64(t.Sub(m.start))
	for {
		cur := m.elapsed.Load()
		if target <= cur || m.elapsed.CompareAndSwap(cur, target) {
			return
		}
	}
}

// Advance moves the clock forward by d, non-positive d is ignored
func (m *MockTimeProvider) Advance(d time.Duration) {
	if d > 0 {
		m.elapsed.Add(int64(d))
	}
}

// Step advances by n frames at the given frame rate
func (m *MockTimeProvider) Step(n, fps int) {
	m.Advance(time.Duration(n) * FrameInterval(fps))
}
