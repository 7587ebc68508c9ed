package system

import (
	"sync/atomic"

	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/status"
)

// ShieldSystem owns the planet shield: toggling, upkeep and regen gating
type ShieldSystem struct {
	engine.SystemBase

	entity     core.Entity
	statActive *atomic.Bool
}

func NewShieldSystem(w *engine.World) engine.System {
	s := &ShieldSystem{SystemBase: engine.NewSystemBase(w)}
	s.statActive = s.Resource.Status.Bools.Get(status.KeyShieldActive)
	return s
}

// Init creates the shield entity once and forces it down
func (s *ShieldSystem) Init() {
	if !s.World.Alive(s.entity) {
		s.entity = s.World.CreateEntity()
		s.Component.Kinetic.Set(s.entity, component.KineticComponent{Pos: playerPos(s.World)})
		s.Component.Collider.Set(s.entity, component.ColliderComponent{
			Kind:   core.KindShield,
			Radius: s.Resource.Tuning.Shield.Radius,
		})
	}
	s.setActive(false)
}

func (s *ShieldSystem) Name() string  { return "shield" }
func (s *ShieldSystem) Priority() int { return parameter.PriorityShield }

// Entity returns the shield entity
func (s *ShieldSystem) Entity() core.Entity { return s.entity }

func (s *ShieldSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventShieldToggle}
}

func (s *ShieldSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ShieldTogglePayload)
	if !ok {
		return
	}
	if p.Active {
		s.Activate()
	} else {
		s.Deactivate()
	}
}

// Activate raises the shield for one upkeep charge
// No-op when already up; false when energy is insufficient
func (s *ShieldSystem) Activate() bool {
	if s.Active() {
		return true
	}
	econ := s.Resource.Economy
	if !econ.TrySpendEnergy(econ.ShieldCost) {
		s.World.PushEvent(event.EventActionRejected, &event.ActionRejectedPayload{Action: core.ActionShield})
		return false
	}
	econ.SetRegen(false)
	s.setActive(true)
	return true
}

// Deactivate drops the shield and resumes energy regen
func (s *ShieldSystem) Deactivate() {
	if !s.Active() {
		return
	}
	s.Resource.Economy.SetRegen(true)
	s.setActive(false)
}

// Active reports whether the shield is up
func (s *ShieldSystem) Active() bool {
	sh, ok := s.Component.Shield.Get(s.entity)
	return ok && sh.Active
}

func (s *ShieldSystem) setActive(active bool) {
	s.Component.Shield.Set(s.entity, component.ShieldComponent{Active: active})
	s.Component.Collider.Mutate(s.entity, func(c *component.ColliderComponent) {
		c.Active = active
	})
	s.Component.Visibility.Set(s.entity, component.VisibilityComponent{Visible: active})
	s.statActive.Store(active)
}

// Update charges upkeep every cost interval, dropping the shield when energy runs out
func (s *ShieldSystem) Update() {
	sh, ok := s.Component.Shield.Get(s.entity)
	if !ok || !sh.Active {
		return
	}

	econ := s.Resource.Economy
	rate := s.Resource.Tuning.Shield.CostRate
	sh.SinceCharge += s.Resource.Time.DeltaTime

	for sh.SinceCharge >= rate {
		if !econ.TrySpendEnergy(econ.ShieldCost) {
			econ.SetRegen(true)
			s.setActive(false)
			return
		}
		sh.SinceCharge -= rate
	}
	s.Component.Shield.Set(s.entity, sh)
}
