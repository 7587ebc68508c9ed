package system

import (
	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/vmath"
)

// MissileSystem fires missiles, flies them to their target and retires them after the explosion window
type MissileSystem struct {
	engine.SystemBase
}

func NewMissileSystem(w *engine.World) engine.System {
	return &MissileSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *MissileSystem) Init()         {}
func (s *MissileSystem) Name() string  { return "missile" }
func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventFireMissile}
}

func (s *MissileSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.FireMissilePayload); ok {
		s.Fire(p.Target, p.Free)
	}
}

// Fire launches a missile at target; paid shots also trigger the cluster upgrade
// Returns false when energy is insufficient
func (s *MissileSystem) Fire(target vmath.Vec2, free bool) bool {
	econ := s.Resource.Economy
	if !free && !econ.TrySpendEnergy(econ.MissileCost) {
		s.World.PushEvent(event.EventActionRejected, &event.ActionRejectedPayload{Action: core.ActionMissile})
		return false
	}

	origin := playerPos(s.World)
	speed := econ.MissileSpeed.Current
	spawnMissile(s.World, origin, target, speed, !free)

	if !free && econ.Owns(economy.UpgradeClusterMissile) {
		r := s.Resource.Tuning.Missile.ClusterRadius
		if econ.Owns(economy.UpgradeLargerMissiles) {
			r = s.Resource.Tuning.Missile.LargeClusterRadius
		}
		for _, off := range [...]vmath.Vec2{{X: r}, {X: -r}, {Y: r}, {Y: -r}} {
			spawnMissile(s.World, origin, target.Add(off), speed, false)
		}
	}
	return true
}

// Update retires lingering explosions, then flies the rest
func (s *MissileSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	linger := s.Resource.Tuning.Missile.ExplosionLinger
	tol := s.Resource.Tuning.Missile.TargetTolerance

	for _, e := range s.Component.Missile.All() {
		m, ok := s.Component.Missile.Get(e)
		if !ok {
			continue
		}

		if m.Phase == component.MissilePhaseExploded {
			m.SinceExplosion += dt
			if m.SinceExplosion >= linger {
				s.retire(e, m)
				continue
			}
			s.Component.Missile.Set(e, m)
			continue
		}

		k, ok := s.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		step := k.Vel.Scale(dt.Seconds())
		if k.Pos.Dist(m.Target) <= step.Len() {
			k.Pos = m.Target
		} else {
			k.Pos = k.Pos.Add(step)
		}
		s.Component.Kinetic.Set(e, k)

		if k.Pos.WithinBox(m.Target, tol) {
			s.Explode(e)
		}
	}
}

// Explode switches a missile to its explosion state in place
func (s *MissileSystem) Explode(e core.Entity) {
	explode(s.World, e)
}

func explode(w *engine.World, e core.Entity) {
	m, ok := w.Components.Missile.Get(e)
	if !ok || m.Phase == component.MissilePhaseExploded {
		return
	}
	m.Phase = component.MissilePhaseExploded
	m.SinceExplosion = 0
	w.Components.Missile.Set(e, m)

	w.Components.Kinetic.Mutate(e, func(k *component.KineticComponent) {
		k.Vel = vmath.Vec2{}
	})

	radius := w.Resource.Tuning.Missile.ExplosionRadius
	if w.Resource.Economy.Owns(economy.UpgradeLargerMissiles) {
		radius = w.Resource.Tuning.Missile.LargeExplosionRadius
	}
	w.Components.Collider.Mutate(e, func(c *component.ColliderComponent) {
		c.Radius = radius
	})
}

func (s *MissileSystem) retire(e core.Entity, m component.MissileComponent) {
	econ := s.Resource.Economy
	if m.Lead && m.Killed && econ.Owns(economy.UpgradeEnergyVampire) {
		econ.RefundEnergy(s.Resource.Tuning.Missile.VampireRefund)
	}
	s.World.DestroyEntity(m.Marker)
	s.World.DestroyEntity(e)
}
