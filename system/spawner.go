package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/status"
	"github.com/lixenwraith/space-commander/vmath"
)

// SpawnerSystem releases a wave of enemies every wave interval
type SpawnerSystem struct {
	engine.SystemBase

	waveTimer time.Duration

	statSpawned *atomic.Int64
}

func NewSpawnerSystem(w *engine.World) engine.System {
	s := &SpawnerSystem{SystemBase: engine.NewSystemBase(w)}
	s.statSpawned = s.Resource.Status.Ints.Get(status.KeyEnemiesSpawned)
	return s
}

func (s *SpawnerSystem) Init() {
	s.waveTimer = 0
	s.statSpawned.Store(0)
}

func (s *SpawnerSystem) Name() string  { return "spawner" }
func (s *SpawnerSystem) Priority() int { return parameter.PrioritySpawner }

// Update re-reads the interval each wave so director changes apply immediately
func (s *SpawnerSystem) Update() {
	s.waveTimer += s.Resource.Time.DeltaTime
	for {
		state := s.Resource.Director.State
		if state.WaveInterval <= 0 || s.waveTimer < state.WaveInterval {
			return
		}
		s.waveTimer -= state.WaveInterval
		s.SpawnWave(state.WaveSize, state.EnemySpeed)
	}
}

// SpawnWave creates size enemies on random borders aimed at the planet
func (s *SpawnerSystem) SpawnWave(size int, speed float64) {
	target := playerPos(s.World)
	for i := 0; i < size; i++ {
		side, pos := s.borderPoint()
		spawnEnemy(s.World, pos, target, speed, side)
		s.World.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{Side: side})
	}
	s.statSpawned.Add(int64(size))
	log.Printf("spawner: wave of %d at speed %.1f", size, speed)
}

// borderPoint picks a side uniformly and a point along it
func (s *SpawnerSystem) borderPoint() (core.Side, vmath.Vec2) {
	f := s.Resource.Tuning.Field
	rng := s.Resource.Random

	side := core.Side(rng.IntN(core.SideCount))
	along := (rng.Float64()*2 - 1) * f.HalfExtent
	edge := f.HalfExtent + f.SpawnMargin

	switch side {
	case core.SideLeft:
		return side, vmath.V(-edge, along)
	case core.SideRight:
		return side, vmath.V(edge, along)
	case core.SideTop:
		return side, vmath.V(along, edge)
	default:
		return side, vmath.V(along, -edge)
	}
}
