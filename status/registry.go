// Package status is a lock-free metrics facade shared by systems and front ends
package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyEnemyLive       = "enemy.live"
	KeyGhostLive       = "ghost.live"
	KeyMissileLive     = "missile.live"
	KeyScanLive        = "scan.live"
	KeyShieldActive    = "shield.active"
	KeyDifficultyLevel = "difficulty.level"
	KeyEnemySpeed      = "difficulty.speed"
	KeyWaveSize        = "difficulty.wave_size"
	KeyEnemiesSpawned  = "enemy.spawned"
	KeyEnemiesKilled   = "enemy.killed"
	KeyGameState       = "game.state"
	KeyEngineTicks     = "engine.ticks"
	KeyEventsDropped   = "engine.events_dropped"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value" in sorted key order per type
// Used by debug overlays
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return lines
}
