package system

import (
	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/physics"
)

// contactHandler resolves one overlapping pair; a's kind <= b's kind
type contactHandler func(s *CollisionSystem, c physics.Contact)

// CollisionSystem mirrors colliders into the physics oracle and turns overlaps into outcomes
// Dispatch is a table keyed by the ordered (kind, kind) pair
type CollisionSystem struct {
	engine.SystemBase
	table [core.KindCount][core.KindCount]contactHandler
}

func NewCollisionSystem(w *engine.World) engine.System {
	s := &CollisionSystem{SystemBase: engine.NewSystemBase(w)}
	s.table[core.KindPlanet][core.KindEnemy] = (*CollisionSystem).planetEnemy
	s.table[core.KindEnemy][core.KindMissile] = (*CollisionSystem).enemyMissile
	s.table[core.KindEnemy][core.KindScan] = (*CollisionSystem).scanTouch
	s.table[core.KindEnemy][core.KindShield] = (*CollisionSystem).enemyShield
	s.table[core.KindGhost][core.KindScan] = (*CollisionSystem).scanTouch
	return s
}

func (s *CollisionSystem) Init()         {}
func (s *CollisionSystem) Name() string  { return "collision" }
func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update() {
	oracle := s.Resource.Physics
	for _, e := range s.Component.Collider.All() {
		c, ok := s.Component.Collider.Get(e)
		if !ok {
			continue
		}
		k, ok := s.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		oracle.Set(e, physics.Body{Kind: c.Kind, Pos: k.Pos, Radius: c.Radius, Active: c.Active})
	}

	oracle.Step()
	for _, c := range oracle.Contacts() {
		if h := s.table[c.KindA][c.KindB]; h != nil {
			h(s, c)
		}
	}
}

// planetEnemy flags the enemy for planet-contact resolution in cleanup
func (s *CollisionSystem) planetEnemy(c physics.Contact) {
	markDestroyed(s.World, c.B, core.CausePlanet)
}

// enemyMissile kills on any overlap, in flight or during the explosion window
func (s *CollisionSystem) enemyMissile(c physics.Contact) {
	enemy, missile := c.A, c.B
	if d, ok := s.Component.Destroyed.Get(enemy); ok && d.Cause == core.CauseMissile {
		return
	}
	if !markDestroyed(s.World, enemy, core.CauseMissile) {
		return
	}

	s.Component.Missile.Mutate(missile, func(m *component.MissileComponent) {
		m.Killed = true
	})
	explode(s.World, missile)

	loc, _ := s.Component.Kinetic.Get(enemy)
	s.World.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{Location: loc.Pos})
}

// scanTouch tags enemies and ghosts on first contact only
func (s *CollisionSystem) scanTouch(c physics.Contact) {
	if !c.Started {
		return
	}
	target := c.A
	if s.Component.Scanned.Has(target) || s.Component.Destroyed.Has(target) {
		return
	}
	s.Component.Scanned.Set(target, component.ScannedComponent{})
}

func (s *CollisionSystem) enemyShield(c physics.Contact) {
	markDestroyed(s.World, c.A, core.CauseShield)
}
