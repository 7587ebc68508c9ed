package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-commander/engine"
)

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached")
}

func TestRunnerStepsGameTime(t *testing.T) {
	sim, _ := newPlaying(t)
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	r := NewRunner(sim, mock, time.Millisecond)
	r.Start()
	defer r.Stop()

	mock.Advance(50 * time.Millisecond)
	waitFor(t, func() bool { return sim.Elapsed() == 50*time.Millisecond })

	r.Pause()
	mock.Advance(time.Second)
	waitFor(t, func() bool { return r.Steps() > 5 })
	r.Resume()

	mock.Advance(20 * time.Millisecond)
	waitFor(t, func() bool { return sim.Elapsed() == 70*time.Millisecond })
}

func TestRunnerStopIdempotent(t *testing.T) {
	sim, _ := newPlaying(t)
	r := NewRunner(sim, nil, time.Millisecond)
	r.Start()
	r.Stop()
	r.Stop()
}

func TestRunnerStopBeforeStart(t *testing.T) {
	sim, _ := newPlaying(t)
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	r := NewRunner(sim, mock, time.Millisecond)

	r.Stop()
	if r.Running() {
		t.Fatal("running after Stop on an idle runner")
	}

	r.Start()
	mock.Advance(30 * time.Millisecond)
	waitFor(t, func() bool { return sim.Elapsed() == 30*time.Millisecond })

	r.Stop()
	if r.Running() {
		t.Fatal("Stop after Start left the loop running")
	}
	steps := r.Steps()
	time.Sleep(10 * time.Millisecond)
	if r.Steps() != steps {
		t.Error("loop kept stepping after Stop")
	}
}

func TestRunnerRestartsAfterStop(t *testing.T) {
	sim, _ := newPlaying(t)
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	r := NewRunner(sim, mock, time.Millisecond)

	r.Start()
	r.Stop()
	r.Start()
	defer r.Stop()

	mock.Advance(20 * time.Millisecond)
	waitFor(t, func() bool { return sim.Elapsed() == 20*time.Millisecond })
}
