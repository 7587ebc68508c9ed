package system

import "github.com/lixenwraith/space-commander/engine"

// Factory constructs a system bound to a world
type Factory func(w *engine.World) engine.System

// Factories lists every simulation system; registration order is irrelevant, priority decides
var Factories = []Factory{
	NewRestartSystem,
	NewMotionSystem,
	NewMissileSystem,
	NewScanSystem,
	NewShieldSystem,
	NewCollisionSystem,
	NewVisibilitySystem,
	NewSpawnerSystem,
	NewRechargeSystem,
	NewWarningSystem,
	NewCleanupSystem,
	NewScoreSystem,
	NewDirectorSystem,
	NewCounterSystem,
}

// RegisterAll spawns the planet and registers every system with the scheduler
func RegisterAll(w *engine.World, s *engine.Scheduler) {
	if !w.Alive(w.Resource.PlayerBody) {
		SpawnPlanet(w)
	}
	for _, f := range Factories {
		s.Register(f(w))
	}
}
