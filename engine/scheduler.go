package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/status"
)

// Scheduler runs one deterministic simulation tick per Tick call
//
// Order within a tick:
//  1. Drain events queued since the last tick; a restart drops the input queued before it
//  2. Run systems by ascending priority, draining events at every phase boundary
//  3. Drain until the queue is empty so nothing survives into the next tick
type Scheduler struct {
	world  *World
	router *event.Router

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewScheduler attaches a router to the world's event queue
func NewScheduler(w *World) *Scheduler {
	s := &Scheduler{
		world:  w,
		router: event.NewRouter(w.Resource.Events),
	}
	if reg := w.Resource.Status; reg != nil {
		s.statTicks = reg.Ints.Get(status.KeyEngineTicks)
		s.statDropped = reg.Ints.Get(status.KeyEventsDropped)
	}
	return s
}

// Router exposes the router for outbound observers
func (s *Scheduler) Router() *event.Router {
	return s.router
}

// Register adds sys to the world and, if it handles events, to the router
func (s *Scheduler) Register(sys System) {
	sys.Init()
	s.world.AddSystem(sys)
	if h, ok := sys.(event.Handler); ok {
		s.router.Register(h)
	}
}

// Tick advances the simulation by dt
func (s *Scheduler) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	s.world.RunSafe(func() {
		s.world.Resource.Time.Advance(dt)

		s.dispatchPending()

		phase := -1
		for _, sys := range s.world.Systems() {
			p := sys.Priority() / parameter.PhaseWidth
			if p != phase {
				if phase >= 0 {
					s.router.DispatchAll()
				}
				phase = p
			}
			sys.Update()
		}

		s.settle()
	})

	if s.statTicks != nil {
		s.statTicks.Add(1)
	}
}

// Flush dispatches pending events without advancing time
// Used for control events (restart, state changes) outside of Playing
func (s *Scheduler) Flush() {
	s.world.RunSafe(func() {
		s.dispatchPending()
		s.settle()
	})
}

// dispatchPending routes events queued since the last tick
// Input queued ahead of a restart belongs to the old run and is dropped
func (s *Scheduler) dispatchPending() {
	if n := s.router.DispatchReset(event.EventRestart); n > 0 {
		log.Printf("scheduler: restart dropped %d stale events", n)
	}
}

// settle drains the queue to empty, discarding a runaway remainder
func (s *Scheduler) settle() {
	if s.router.Drain(parameter.MaxDrainPasses) {
		return
	}
	q := s.world.Resource.Events
	log.Printf("scheduler: discarding %d events after %d drain passes", q.Len(), parameter.MaxDrainPasses)
	q.Discard()
	if s.statDropped != nil {
		s.statDropped.Add(1)
	}
}

// InitAll re-initializes every system in execution order
func (s *Scheduler) InitAll() {
	for _, sys := range s.world.Systems() {
		sys.Init()
	}
}
