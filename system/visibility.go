package system

import (
	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/parameter"
)

// VisibilitySystem turns scan contacts into timed reveals and keeps ghosts on their last known position
type VisibilitySystem struct {
	engine.SystemBase
}

func NewVisibilitySystem(w *engine.World) engine.System {
	return &VisibilitySystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *VisibilitySystem) Init()         {}
func (s *VisibilitySystem) Name() string  { return "visibility" }
func (s *VisibilitySystem) Priority() int { return parameter.PriorityVisibility }

// Update counts down running reveals before granting new ones,
// so a reveal granted this tick lasts exactly its duration from here
func (s *VisibilitySystem) Update() {
	s.expireReveals()
	s.revealScannedEnemies()
	s.resolveScannedGhosts()
	s.trackGhosts()
}

func (s *VisibilitySystem) expireReveals() {
	dt := s.Resource.Time.DeltaTime
	for _, e := range s.Component.Reveal.All() {
		r, ok := s.Component.Reveal.Get(e)
		if !ok {
			continue
		}
		r.Remaining -= dt
		if r.Remaining > 0 {
			s.Component.Reveal.Set(e, r)
			continue
		}
		s.Component.Reveal.Remove(e)
		s.Component.Visibility.Set(e, component.VisibilityComponent{Visible: false})
	}
}

func (s *VisibilitySystem) revealScannedEnemies() {
	duration := s.Resource.Tuning.Scan.RevealDuration
	for _, e := range s.Component.Scanned.All() {
		enemy, ok := s.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		s.Component.Scanned.Remove(e)
		s.Component.Visibility.Set(e, component.VisibilityComponent{Visible: true})
		s.Component.Reveal.Set(e, component.RevealComponent{Remaining: duration})

		// Ghost becomes known from now on
		if k, ok := s.Component.Kinetic.Get(e); ok && s.Component.Ghost.Has(enemy.Ghost) {
			s.Component.Kinetic.Set(enemy.Ghost, component.KineticComponent{Pos: k.Pos})
			s.Component.Visibility.Set(enemy.Ghost, component.VisibilityComponent{Visible: true})
		}
	}
}

// resolveScannedGhosts despawns ghosts whose enemy is gone and untags the rest
func (s *VisibilitySystem) resolveScannedGhosts() {
	for _, e := range s.Component.Scanned.All() {
		g, ok := s.Component.Ghost.Get(e)
		if !ok {
			continue
		}
		if g.Orphaned || !s.Component.Enemy.Has(g.Enemy) {
			s.World.DestroyEntity(e)
			continue
		}
		s.Component.Scanned.Remove(e)
	}
}

// trackGhosts keeps a ghost on its enemy while the enemy is revealed
func (s *VisibilitySystem) trackGhosts() {
	for _, e := range s.Component.Reveal.All() {
		enemy, ok := s.Component.Enemy.Get(e)
		if !ok {
			continue
		}
		k, ok := s.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		s.Component.Kinetic.Mutate(enemy.Ghost, func(g *component.KineticComponent) {
			g.Pos = k.Pos
		})
	}
}
