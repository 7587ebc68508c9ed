package system

import (
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
)

// WarningSystem lights the border a wave arrives from and dims it over time
type WarningSystem struct {
	engine.SystemBase
}

func NewWarningSystem(w *engine.World) engine.System {
	return &WarningSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *WarningSystem) Init() {
	*s.Resource.Warning = engine.WarningResource{}
}

func (s *WarningSystem) Name() string  { return "warning" }
func (s *WarningSystem) Priority() int { return parameter.PriorityWarning }

func (s *WarningSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnemySpawned}
}

func (s *WarningSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.EnemySpawnedPayload); ok {
		s.Resource.Warning.Remaining[p.Side] = s.Resource.Tuning.Field.WarningDuration
	}
}

func (s *WarningSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	for i := range s.Resource.Warning.Remaining {
		s.Resource.Warning.Remaining[i] = max(s.Resource.Warning.Remaining[i]-dt, 0)
	}
}
