package engine

import (
	"testing"
	"time"
)

func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(mock)

	mock.Advance(3 * time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Fatalf("Elapsed = %s, want 3s", got)
	}

	pc.Pause()
	pc.Pause()
	mock.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed while paused = %s, want 3s", got)
	}
	if got := pc.TotalPaused(); got != 5*time.Second {
		t.Errorf("TotalPaused during pause = %s, want 5s", got)
	}

	pc.Resume()
	pc.Resume()
	mock.Advance(2 * time.Second)
	if got := pc.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed after resume = %s, want 5s", got)
	}
	if pc.IsPaused() {
		t.Error("clock still paused")
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewMockTimeProvider(start)
	m.Advance(time.Minute)
	if got := m.Now().Sub(start); got != time.Minute {
		t.Errorf("advanced %s, want 1m", got)
	}
}
