package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/vmath"
)

func TestScanDespawnsAtMaxRadius(t *testing.T) {
	h := newHarness(t)
	h.push(event.EventScanRequest, nil)
	h.step(1)

	scans := h.world.Components.Scan.All()
	if len(scans) != 1 {
		t.Fatalf("scans = %d, want 1", len(scans))
	}
	e := scans[0]

	h.stepFor(19 * time.Second)
	if !h.world.Components.Scan.Has(e) {
		t.Fatal("scan despawned early")
	}
	h.stepFor(time.Second + testDT)
	if h.world.Components.Scan.Has(e) {
		t.Error("scan alive after 20s")
	}
}

func TestScanCostsEnergy(t *testing.T) {
	h := newHarness(t)
	econ := h.world.Resource.Economy
	econ.SpendEnergy(econ.Energy())

	h.push(event.EventScanRequest, nil)
	h.step(1)
	if h.world.Components.Scan.Count() != 0 {
		t.Error("scan fired without energy")
	}
	if h.count(event.EventActionRejected) != 1 {
		t.Error("manual scan rejection not reported")
	}
}

func TestScannedEnemyRevealExpiresExactly(t *testing.T) {
	h := newHarness(t)
	enemy, ghost := h.placeEnemy(vmath.V(100, 0))

	h.push(event.EventScanRequest, nil)
	for i := 0; i < 500 && !h.visible(enemy); i++ {
		h.step(1)
	}
	if !h.visible(enemy) {
		t.Fatal("enemy never revealed")
	}
	if h.world.Components.Scanned.Has(enemy) {
		t.Error("Scanned tag not cleared after reveal")
	}
	if !h.visible(ghost) || h.pos(ghost) != h.pos(enemy) {
		t.Error("ghost not moved onto revealed enemy")
	}

	reveal := h.world.Resource.Tuning.Scan.RevealDuration
	h.step(int(reveal/testDT) - 1)
	if !h.visible(enemy) || !h.world.Components.Reveal.Has(enemy) {
		t.Fatal("reveal ended early")
	}
	h.step(1)
	if h.visible(enemy) {
		t.Error("enemy visible after reveal duration")
	}
	if h.world.Components.Reveal.Has(enemy) {
		t.Error("reveal timer not removed")
	}
	if !h.visible(ghost) {
		t.Error("ghost should stay as last known position")
	}
}

func TestGhostTracksEnemyDuringReveal(t *testing.T) {
	h := newHarness(t)
	enemy, ghost := spawnEnemy(h.world, vmath.V(100, 0), vmath.Vec2{}, 10, 0)
	h.world.Components.Scanned.Set(enemy, component.ScannedComponent{})
	h.step(10)

	if h.pos(ghost) != h.pos(enemy) {
		t.Errorf("ghost %v not tracking enemy %v", h.pos(ghost), h.pos(enemy))
	}

	h.step(60)
	if h.pos(ghost) == h.pos(enemy) {
		t.Error("ghost still tracking after reveal expired")
	}
}

func TestOrphanedGhostRemovedByNextScan(t *testing.T) {
	h := newHarness(t)
	enemy, ghost := h.placeEnemy(vmath.V(100, 0))
	h.world.Components.Scanned.Set(enemy, component.ScannedComponent{})
	h.step(1)
	if !h.visible(ghost) {
		t.Fatal("ghost not known after reveal")
	}

	markDestroyed(h.world, enemy, core.CauseMissile)
	h.step(1)
	if h.world.Components.Enemy.Has(enemy) {
		t.Fatal("enemy not cleaned up")
	}
	g, ok := h.world.Components.Ghost.Get(ghost)
	if !ok || !g.Orphaned {
		t.Fatal("known ghost should be orphaned, not removed")
	}

	h.push(event.EventScanRequest, nil)
	h.stepFor(2 * time.Second)
	if h.world.Alive(ghost) {
		t.Error("orphaned ghost survived scan contact")
	}
}

func TestAutoScan(t *testing.T) {
	h := newHarness(t)
	h.push(event.EventAutoScanConfig, &event.AutoScanConfigPayload{Enabled: true, Interval: time.Millisecond})
	h.step(1)

	ss := h.system("scan").(*ScanSystem)
	enabled, interval := ss.AutoScan()
	if !enabled || interval != h.world.Resource.Tuning.Scan.AutoScanMinInterval {
		t.Fatalf("auto-scan = %v %s, want enabled at min bound", enabled, interval)
	}

	h.stepFor(interval - 2*testDT)
	if h.world.Components.Scan.Count() != 0 {
		t.Fatal("auto-scan fired early")
	}
	h.step(3)
	if h.world.Components.Scan.Count() != 1 {
		t.Errorf("scans = %d, want 1 after interval", h.world.Components.Scan.Count())
	}
	if h.world.Resource.Economy.Energy() != 5 {
		t.Errorf("auto-scan energy = %d, want 5", h.world.Resource.Economy.Energy())
	}
}

func TestManualScanResetsAutoTimer(t *testing.T) {
	h := newHarness(t)
	ss := h.system("scan").(*ScanSystem)
	ss.Configure(true, 2*time.Second)

	h.stepFor(1500 * time.Millisecond)
	h.push(event.EventScanRequest, nil)
	h.stepFor(1 * time.Second)
	if n := h.world.Components.Scan.Count(); n != 1 {
		t.Errorf("scans = %d, want only the manual one", n)
	}
}

func TestDyingScannersCapped(t *testing.T) {
	h := newHarness(t)
	econ := h.world.Resource.Economy
	econ.AddScore(econ.Cost(economy.UpgradeDyingScanners))
	econ.Purchase(economy.UpgradeDyingScanners)

	for i := 0; i < 7; i++ {
		h.push(event.EventEnemyKilled, &event.EnemyKilledPayload{Location: vmath.V(float64(i*10), 0)})
	}
	h.step(1)

	dying := 0
	for _, e := range h.world.Components.Scan.All() {
		sc, _ := h.world.Components.Scan.Get(e)
		if sc.Dying {
			dying++
			if sc.MaxRadius != h.world.Resource.Tuning.Scan.DyingMaxRadius {
				t.Errorf("dying scan max radius = %f", sc.MaxRadius)
			}
		}
	}
	if dying != h.world.Resource.Tuning.Scan.DyingLimit {
		t.Errorf("dying scans = %d, want %d", dying, h.world.Resource.Tuning.Scan.DyingLimit)
	}
	if econ.Energy() != 6 {
		t.Error("dying scans cost energy")
	}
}

func TestNoDyingScanWithoutUpgrade(t *testing.T) {
	h := newHarness(t)
	h.push(event.EventEnemyKilled, &event.EnemyKilledPayload{})
	h.step(1)
	if h.world.Components.Scan.Count() != 0 {
		t.Error("dying scan spawned without upgrade")
	}
}
