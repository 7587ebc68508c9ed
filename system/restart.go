package system

import (
	"log"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/difficulty"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
)

// RestartSystem returns the run to its initial condition on a restart signal
type RestartSystem struct {
	engine.SystemBase
}

func NewRestartSystem(w *engine.World) engine.System {
	return &RestartSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *RestartSystem) Init()         {}
func (s *RestartSystem) Name() string  { return "restart" }
func (s *RestartSystem) Priority() int { return parameter.PriorityRestart }
func (s *RestartSystem) Update()       {}

func (s *RestartSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventRestart}
}

func (s *RestartSystem) HandleEvent(ev event.GameEvent) {
	s.Restart()
}

// Restart is idempotent: repeated calls leave the same fresh state
func (s *RestartSystem) Restart() {
	t := *s.Resource.Tuning

	*s.Resource.Economy = *economy.New(t)
	s.Resource.Director.Reset(difficulty.NewState(t.Difficulty), s.Resource.Time.Elapsed)

	for _, store := range [][]core.Entity{
		s.Component.Enemy.All(),
		s.Component.Ghost.All(),
		s.Component.Missile.All(),
		s.Component.Marker.All(),
		s.Component.Scan.All(),
	} {
		for _, e := range store {
			s.World.DestroyEntity(e)
		}
	}

	// Other systems drop their private timers and flags
	for _, sys := range s.World.Systems() {
		if sys != engine.System(s) {
			sys.Init()
		}
	}

	s.World.PushEvent(event.EventGameReset, nil)
	s.World.PushEvent(event.EventScoreChanged, &event.ScoreChangedPayload{})
	log.Printf("restart: run reset")
}
