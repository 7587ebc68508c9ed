package system

import (
	"sync/atomic"

	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/status"
)

// CounterSystem publishes live entity counts for the next tick's readers
type CounterSystem struct {
	engine.SystemBase

	statEnemies  *atomic.Int64
	statGhosts   *atomic.Int64
	statMissiles *atomic.Int64
	statScans    *atomic.Int64
}

func NewCounterSystem(w *engine.World) engine.System {
	s := &CounterSystem{SystemBase: engine.NewSystemBase(w)}
	reg := s.Resource.Status
	s.statEnemies = reg.Ints.Get(status.KeyEnemyLive)
	s.statGhosts = reg.Ints.Get(status.KeyGhostLive)
	s.statMissiles = reg.Ints.Get(status.KeyMissileLive)
	s.statScans = reg.Ints.Get(status.KeyScanLive)
	return s
}

func (s *CounterSystem) Init()         { s.Update() }
func (s *CounterSystem) Name() string  { return "counter" }
func (s *CounterSystem) Priority() int { return parameter.PriorityCounter }

func (s *CounterSystem) Update() {
	s.statEnemies.Store(int64(s.Component.Enemy.Count()))
	s.statGhosts.Store(int64(s.Component.Ghost.Count()))
	s.statMissiles.Store(int64(s.Component.Missile.Count()))
	s.statScans.Store(int64(s.Component.Scan.Count()))
}
