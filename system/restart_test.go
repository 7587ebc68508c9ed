package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/vmath"
)

func dirty(h *harness) {
	econ := h.world.Resource.Economy
	econ.AddScore(600)
	econ.Purchase(economy.UpgradeMaxEnergy)
	h.placeEnemy(vmath.V(300, 0))
	h.push(event.EventFireMissile, &event.FireMissilePayload{Target: vmath.V(-200, 0)})
	h.push(event.EventScanRequest, nil)
	h.push(event.EventShieldToggle, &event.ShieldTogglePayload{Active: true})
	h.stepFor(11 * time.Second)
}

func TestRestartResetsRun(t *testing.T) {
	h := newHarness(t)
	dirty(h)

	h.push(event.EventRestart, nil)
	h.step(1)

	c := h.world.Components
	for name, n := range map[string]int{
		"enemy":   c.Enemy.Count(),
		"ghost":   c.Ghost.Count(),
		"missile": c.Missile.Count(),
		"marker":  c.Marker.Count(),
		"scan":    c.Scan.Count(),
	} {
		if n != 0 {
			t.Errorf("%s count = %d after restart", name, n)
		}
	}
	if c.Planet.Count() != 1 {
		t.Error("planet removed by restart")
	}

	econ := h.world.Resource.Economy
	if econ.Energy() != 6 || econ.MaxEnergy.Current != 6 || econ.CurrentPoints() != 0 || econ.AllTimeSpent() != 0 {
		t.Errorf("economy not fresh: energy=%d max=%d points=%d spent=%d",
			econ.Energy(), econ.MaxEnergy.Current, econ.CurrentPoints(), econ.AllTimeSpent())
	}
	if h.system("shield").(*ShieldSystem).Active() || !econ.RegenEnabled() {
		t.Error("shield survived restart")
	}

	st := h.world.Resource.Director.State
	if st.Level != 0 || st.WaveSize != 1 {
		t.Errorf("difficulty not fresh: level=%d wave=%d", st.Level, st.WaveSize)
	}
	if h.count(event.EventGameReset) != 1 {
		t.Error("GameReset not emitted")
	}
}

func TestRestartIdempotent(t *testing.T) {
	h := newHarness(t)
	dirty(h)
	rs := h.system("restart").(*RestartSystem)

	rs.Restart()
	first := snapshotCounts(h)
	rs.Restart()
	if second := snapshotCounts(h); second != first {
		t.Errorf("second restart changed state: %v vs %v", first, second)
	}
}

func TestRestartedRunSpawnsOnSchedule(t *testing.T) {
	h := newHarness(t)
	h.stepFor(5 * time.Second)
	h.push(event.EventRestart, nil)

	h.stepFor(10*time.Second - testDT)
	if h.world.Components.Enemy.Count() != 0 {
		t.Fatal("wave timer not reset by restart")
	}
	h.step(1)
	if h.world.Components.Enemy.Count() != 1 {
		t.Error("first wave missing after restart")
	}
}

type counts struct {
	entities, energy, health, points int
	level                            int
	next                             time.Duration
}

func snapshotCounts(h *harness) counts {
	c := h.world.Components
	econ := h.world.Resource.Economy
	return counts{
		entities: c.Kinetic.Count(),
		energy:   econ.Energy(),
		health:   econ.Health(),
		points:   econ.CurrentPoints(),
		level:    h.world.Resource.Director.State.Level,
		next:     h.world.Resource.Director.NextFire(),
	}
}
