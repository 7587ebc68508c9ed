package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/status"
)

// CleanupSystem removes destroyed enemies with their ghosts and settles the outcome:
// score for missile kills, damage and possibly defeat for planet contact
type CleanupSystem struct {
	engine.SystemBase

	lost       bool
	statKilled *atomic.Int64
}

func NewCleanupSystem(w *engine.World) engine.System {
	s := &CleanupSystem{SystemBase: engine.NewSystemBase(w)}
	s.statKilled = s.Resource.Status.Ints.Get(status.KeyEnemiesKilled)
	return s
}

func (s *CleanupSystem) Init() {
	s.lost = false
	s.statKilled.Store(0)
}

func (s *CleanupSystem) Name() string  { return "cleanup" }
func (s *CleanupSystem) Priority() int { return parameter.PriorityCleanup }

func (s *CleanupSystem) Update() {
	for _, e := range s.Component.Destroyed.All() {
		d, ok := s.Component.Destroyed.Get(e)
		if !ok {
			continue
		}
		enemy, isEnemy := s.Component.Enemy.Get(e)
		if !isEnemy {
			s.World.DestroyEntity(e)
			continue
		}

		s.releaseGhost(enemy.Ghost, d.Cause)
		s.World.DestroyEntity(e)

		if d.Cause.Scores() {
			s.World.PushEvent(event.EventScore, &event.ScorePayload{Amount: s.Resource.Tuning.Player.ScorePerKill})
		}
		switch d.Cause {
		case core.CauseMissile, core.CauseShield:
			s.statKilled.Add(1)
		case core.CausePlanet:
			s.planetHit()
		}
	}
}

// releaseGhost despawns the ghost, or orphans it when the player already knows its position
// Planet contact always takes the ghost with it
func (s *CleanupSystem) releaseGhost(ghost core.Entity, cause core.KillCause) {
	g, ok := s.Component.Ghost.Get(ghost)
	if !ok {
		return
	}
	vis, _ := s.Component.Visibility.Get(ghost)
	if cause == core.CausePlanet || !vis.Visible {
		s.World.DestroyEntity(ghost)
		return
	}
	g.Orphaned = true
	g.Enemy = core.NoEntity
	s.Component.Ghost.Set(ghost, g)
}

func (s *CleanupSystem) planetHit() {
	econ := s.Resource.Economy
	defeated := econ.Damage()
	s.World.PushEvent(event.EventPlanetDamaged, &event.PlanetDamagedPayload{Health: econ.Health()})

	if !defeated || s.lost {
		return
	}
	s.lost = true
	econ.LockRemainingScore()
	log.Printf("cleanup: planet destroyed, final score %d", econ.LockedScore())

	s.World.PushEvent(event.EventGameOver, &event.GameOverPayload{Score: econ.LockedScore()})
	s.World.PushEvent(event.EventStateRequest, &event.StateRequestPayload{State: core.StateLose})
}
