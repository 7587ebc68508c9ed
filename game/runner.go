package game

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
)

// Runner steps a Simulation in real time on a fixed wake-up interval
// Each step covers the game time that passed since the previous one, so a late wake-up is caught up in one step
type Runner struct {
	sim      *Simulation
	clock    *engine.PausableClock
	interval time.Duration

	last  time.Duration
	steps atomic.Uint64

	// mu serializes Start and Stop; stopChan is replaced on every Start
	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewRunner creates a runner; source nil means the system clock
func NewRunner(sim *Simulation, source engine.TimeProvider, interval time.Duration) *Runner {
	return &Runner{
		sim:      sim,
		clock:    engine.NewPausableClock(source),
		interval: interval,
	}
}

// Start begins the stepping loop; a stopped runner may be started again
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running.Load() {
		return
	}
	r.running.Store(true)
	r.stopChan = make(chan struct{})
	r.last = r.clock.Elapsed()
	r.wg.Add(1)
	stop := r.stopChan
	core.Go(func() { r.loop(stop) })
}

// Stop halts the loop and waits for the last step to finish
// Stopping a runner that is not running does nothing
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running.Load() {
		return
	}
	r.running.Store(false)
	close(r.stopChan)
	r.wg.Wait()
}

// Running reports whether the loop is active
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Pause freezes game time and moves the simulation to Pause
func (r *Runner) Pause() {
	if r.sim.RequestState(core.StatePause) {
		r.clock.Pause()
	}
}

// Resume restarts game time and returns the simulation to Playing
func (r *Runner) Resume() {
	if r.sim.RequestState(core.StatePlaying) {
		r.clock.Resume()
	}
}

// Steps returns the number of steps taken
func (r *Runner) Steps() uint64 {
	return r.steps.Load()
}

func (r *Runner) loop(stop <-chan struct{}) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			now := r.clock.Elapsed()
			dt := now - r.last
			r.last = now
			r.sim.Step(dt)
			r.steps.Add(1)
		}
	}
}
