// Package game is the facade front ends drive: inbound actions, outbound listeners and the game-state machine
package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/status"
	"github.com/lixenwraith/space-commander/system"
	"github.com/lixenwraith/space-commander/vmath"
)

// Simulation owns one world and its scheduler
//
// Inbound calls only queue events, so they are safe from any goroutine;
// the queued work runs on the next Step
type Simulation struct {
	world *engine.World
	sched *engine.Scheduler

	scan   *system.ScanSystem
	shield *system.ShieldSystem

	mu        sync.Mutex
	listeners []Listener
	pending   []event.GameEvent

	statState *status.AtomicString
}

// New validates t and builds a simulation seeded with seed, waiting in the main menu
func New(t config.Tuning, seed uint64) (*Simulation, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return NewWithRandom(t, engine.NewRandom(seed)), nil
}

// NewWithRandom builds a simulation around a caller-supplied random source
func NewWithRandom(t config.Tuning, rng engine.RandomSource) *Simulation {
	w := engine.NewWorld(engine.NewResource(t, rng))
	s := &Simulation{
		world: w,
		sched: engine.NewScheduler(w),
	}
	s.statState = w.Resource.Status.Strings.Get(status.KeyGameState)

	system.RegisterAll(w, s.sched)
	for _, sys := range w.Systems() {
		switch v := sys.(type) {
		case *system.ScanSystem:
			s.scan = v
		case *system.ShieldSystem:
			s.shield = v
		}
	}

	s.sched.Router().Observe(s.observe)
	s.statState.Store(w.Resource.Game.State.String())
	return s
}

// observe runs inside the tick: state requests apply immediately, everything is queued for listeners
func (s *Simulation) observe(ev event.GameEvent) {
	if ev.Type == event.EventStateRequest {
		if p, ok := ev.Payload.(*event.StateRequestPayload); ok {
			s.transition(p.State)
		}
	}
	s.mu.Lock()
	s.pending = append(s.pending, ev)
	s.mu.Unlock()
}

// AddListener subscribes l to outbound notifications
func (s *Simulation) AddListener(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Step advances the simulation by dt when playing, then notifies listeners
// dt is clamped to the maximum tick delta
func (s *Simulation) Step(dt time.Duration) {
	if s.State() == core.StatePlaying {
		s.sched.Tick(dt)
	}
	s.notify()
}

func (s *Simulation) notify() {
	s.mu.Lock()
	events := s.pending
	s.pending = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, ev := range events {
		for _, l := range listeners {
			l.OnEvent(ev)
		}
	}
}

// === Inbound actions ===

// FireMissile queues a missile strike at target
func (s *Simulation) FireMissile(target vmath.Vec2) {
	s.world.PushEvent(event.EventFireMissile, &event.FireMissilePayload{Target: target})
}

// Scan queues a manual radar scan
func (s *Simulation) Scan() {
	s.world.PushEvent(event.EventScanRequest, &event.ScanRequestPayload{})
}

// Shield queues a shield raise or drop
func (s *Simulation) Shield(active bool) {
	s.world.PushEvent(event.EventShieldToggle, &event.ShieldTogglePayload{Active: active})
}

// ToggleShield queues the opposite of the current shield state
func (s *Simulation) ToggleShield() {
	var active bool
	s.world.RunSafe(func() { active = s.shield.Active() })
	s.Shield(!active)
}

// Upgrade queues a purchase; the outcome arrives as an UpgradeResult notification
func (s *Simulation) Upgrade(u economy.Upgrade) {
	s.world.PushEvent(event.EventUpgradeRequest, &event.UpgradeRequestPayload{Upgrade: u})
}

// SetAutoScan queues an auto-scan reconfiguration; a zero interval keeps the current one
func (s *Simulation) SetAutoScan(enabled bool, interval time.Duration) {
	s.world.PushEvent(event.EventAutoScanConfig, &event.AutoScanConfigPayload{Enabled: enabled, Interval: interval})
}

// RestartGame resets the run at once, whatever the game state
func (s *Simulation) RestartGame() {
	s.world.PushEvent(event.EventRestart, nil)
	s.sched.Flush()
	s.notify()
}

// === Game state ===

var transitions = map[core.GameState][]core.GameState{
	core.StateMainMenu: {core.StatePlaying},
	core.StatePlaying:  {core.StatePause, core.StateLose},
	core.StatePause:    {core.StatePlaying, core.StateMainMenu},
	core.StateLose:     {core.StateMainMenu},
}

// CanTransition reports whether from -> to is a legal state change
func CanTransition(from, to core.GameState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// State returns the current game state
func (s *Simulation) State() core.GameState {
	var st core.GameState
	s.world.RunSafe(func() { st = s.world.Resource.Game.State })
	return st
}

// RequestState applies a legal transition; entering the main menu restarts the run
// Returns false for illegal transitions
func (s *Simulation) RequestState(to core.GameState) bool {
	var ok bool
	s.world.RunSafe(func() { ok = s.transition(to) })
	if ok && to == core.StateMainMenu {
		s.RestartGame()
	}
	return ok
}

// transition must run under the world lock
func (s *Simulation) transition(to core.GameState) bool {
	game := s.world.Resource.Game
	if !CanTransition(game.State, to) {
		return false
	}
	log.Printf("game: %s -> %s", game.State, to)
	game.State = to
	s.statState.Store(to.String())
	return true
}

// === Read access ===

// Elapsed returns simulated time since the run started
func (s *Simulation) Elapsed() time.Duration {
	var d time.Duration
	s.world.RunSafe(func() { d = s.world.Resource.Time.Elapsed })
	return d
}

// Status returns the metrics registry
func (s *Simulation) Status() *status.Registry {
	return s.world.Resource.Status
}

// Tuning returns a copy of the active tuning
func (s *Simulation) Tuning() config.Tuning {
	return *s.world.Resource.Tuning
}
