package system

import (
	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/parameter"
)

// MotionSystem advances enemies along their fixed spawn-time velocity
type MotionSystem struct {
	engine.SystemBase
}

func NewMotionSystem(w *engine.World) engine.System {
	return &MotionSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *MotionSystem) Init()         {}
func (s *MotionSystem) Name() string  { return "motion" }
func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

func (s *MotionSystem) Update() {
	dt := s.Resource.Time.DeltaTime.Seconds()
	for _, e := range s.Component.Enemy.All() {
		s.Component.Kinetic.Mutate(e, func(k *component.KineticComponent) {
			k.Pos = k.Pos.Add(k.Vel.Scale(dt))
		})
	}
}
