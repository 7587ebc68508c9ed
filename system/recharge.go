package system

import (
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/parameter"
)

// RechargeSystem advances energy and health regeneration
type RechargeSystem struct {
	engine.SystemBase
}

func NewRechargeSystem(w *engine.World) engine.System {
	return &RechargeSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *RechargeSystem) Init()         {}
func (s *RechargeSystem) Name() string  { return "recharge" }
func (s *RechargeSystem) Priority() int { return parameter.PriorityRecharge }

func (s *RechargeSystem) Update() {
	s.Resource.Economy.RechargeTick(s.Resource.Time.DeltaTime)
}
