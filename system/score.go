package system

import (
	"log"

	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
)

// ScoreSystem applies score credits and upgrade purchases to the economy
type ScoreSystem struct {
	engine.SystemBase
}

func NewScoreSystem(w *engine.World) engine.System {
	return &ScoreSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *ScoreSystem) Init()         {}
func (s *ScoreSystem) Name() string  { return "score" }
func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }
func (s *ScoreSystem) Update()       {}

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScore,
		event.EventUpgradeRequest,
	}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventScore:
		if p, ok := ev.Payload.(*event.ScorePayload); ok && p.Amount > 0 {
			s.Resource.Economy.AddScore(p.Amount)
			s.announce()
		}

	case event.EventUpgradeRequest:
		if p, ok := ev.Payload.(*event.UpgradeRequestPayload); ok {
			s.Purchase(p.Upgrade)
		}
	}
}

// Purchase buys u and reports the outcome
func (s *ScoreSystem) Purchase(u economy.Upgrade) bool {
	ok := s.Resource.Economy.Purchase(u)
	s.World.PushEvent(event.EventUpgradeResult, &event.UpgradeResultPayload{Upgrade: u, OK: ok})
	if ok {
		log.Printf("score: bought %s", u)
		s.announce()
	}
	return ok
}

func (s *ScoreSystem) announce() {
	econ := s.Resource.Economy
	s.World.PushEvent(event.EventScoreChanged, &event.ScoreChangedPayload{
		Current: econ.CurrentPoints(),
		Locked:  econ.LockedScore(),
	})
}
