package engine

import (
	"sync"
	"time"
)

// TimeProvider is a source of wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock with its monotonic component
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a controllable time source for tests
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// PausableClock measures game time: real time minus every paused interval
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider
	start  time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a running clock on source, system clock if nil
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = RealTimeProvider{}
	}
	return &PausableClock{source: source, start: source.Now()}
}

// Elapsed returns game time since the clock started, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPaused
}

// Pause stops game time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time, adding the pause to the total
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.totalPaused
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
