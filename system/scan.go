package system

import (
	"time"

	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/vmath"
)

// ScanSystem fires radar scans, grows them and runs the auto-scan timer
type ScanSystem struct {
	engine.SystemBase

	autoEnabled  bool
	autoInterval time.Duration
	autoTimer    time.Duration
}

func NewScanSystem(w *engine.World) engine.System {
	return &ScanSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *ScanSystem) Init() {
	t := s.Resource.Tuning.Scan
	s.autoEnabled = t.AutoScanEnabled
	s.autoInterval = t.AutoScanInterval
	s.autoTimer = 0
}

func (s *ScanSystem) Name() string  { return "scan" }
func (s *ScanSystem) Priority() int { return parameter.PriorityScan }

func (s *ScanSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScanRequest,
		event.EventAutoScanConfig,
		event.EventEnemyKilled,
	}
}

func (s *ScanSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventScanRequest:
		auto := false
		if p, ok := ev.Payload.(*event.ScanRequestPayload); ok {
			auto = p.Auto
		}
		s.Fire(auto)

	case event.EventAutoScanConfig:
		if p, ok := ev.Payload.(*event.AutoScanConfigPayload); ok {
			s.Configure(p.Enabled, p.Interval)
		}

	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			s.fireDying(p.Location)
		}
	}
}

// Fire spends scan energy and spawns a full scan from the planet
// Any attempt resets the auto-scan timer
func (s *ScanSystem) Fire(auto bool) bool {
	s.autoTimer = 0

	econ := s.Resource.Economy
	if !econ.TrySpendEnergy(econ.ScanCost) {
		if !auto {
			s.World.PushEvent(event.EventActionRejected, &event.ActionRejectedPayload{Action: core.ActionScan})
		}
		return false
	}
	spawnScan(s.World, playerPos(s.World), s.Resource.Tuning.Scan.MaxRadius, false)
	return true
}

// Configure toggles auto-scan; a non-zero interval is clamped to its bounds
func (s *ScanSystem) Configure(enabled bool, interval time.Duration) {
	s.autoEnabled = enabled
	if interval > 0 {
		t := s.Resource.Tuning.Scan
		s.autoInterval = min(max(interval, t.AutoScanMinInterval), t.AutoScanMaxInterval)
	}
}

// AutoScan reports the auto-scan state
func (s *ScanSystem) AutoScan() (enabled bool, interval time.Duration) {
	return s.autoEnabled, s.autoInterval
}

func (s *ScanSystem) fireDying(at vmath.Vec2) {
	if !s.Resource.Economy.Owns(economy.UpgradeDyingScanners) {
		return
	}
	if s.dyingCount() >= s.Resource.Tuning.Scan.DyingLimit {
		return
	}
	spawnScan(s.World, at, s.Resource.Tuning.Scan.DyingMaxRadius, true)
}

func (s *ScanSystem) dyingCount() int {
	n := 0
	for _, e := range s.Component.Scan.All() {
		if sc, ok := s.Component.Scan.Get(e); ok && sc.Dying {
			n++
		}
	}
	return n
}

func (s *ScanSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	grow := s.Resource.Economy.ScanSpeed.Current * dt.Seconds()

	for _, e := range s.Component.Scan.All() {
		sc, ok := s.Component.Scan.Get(e)
		if !ok {
			continue
		}
		sc.Radius += grow
		if sc.Radius >= sc.MaxRadius {
			s.World.DestroyEntity(e)
			continue
		}
		s.Component.Scan.Set(e, sc)
		s.Component.Collider.Mutate(e, func(c *component.ColliderComponent) {
			c.Radius = sc.Radius
		})
	}

	if !s.autoEnabled {
		return
	}
	s.autoTimer += dt
	if s.autoTimer >= s.autoInterval {
		s.autoTimer = 0
		s.World.PushEvent(event.EventScanRequest, &event.ScanRequestPayload{Auto: true})
	}
}
