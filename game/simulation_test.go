package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/vmath"
)

const frame = 16 * time.Millisecond

// recorder collects notifications by type
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) OnEvent(ev event.GameEvent) { r.events = append(r.events, ev) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newPlaying(t *testing.T) (*Simulation, *recorder) {
	t.Helper()
	return newPlayingWith(t, config.Default())
}

func newPlayingWith(t *testing.T, tn config.Tuning) (*Simulation, *recorder) {
	t.Helper()
	sim := NewWithRandom(tn, &engine.SequenceRandom{})
	rec := &recorder{}
	sim.AddListener(rec)
	if !sim.RequestState(core.StatePlaying) {
		t.Fatal("main menu -> playing refused")
	}
	return sim, rec
}

func run(sim *Simulation, d time.Duration) {
	for i := time.Duration(0); i < d; i += frame {
		sim.Step(frame)
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	tn := config.Default()
	tn.Scan.RevealDuration = 2 * time.Second
	if _, err := New(tn, 1); err == nil {
		t.Error("New accepted a 2s reveal duration")
	}
	if _, err := New(config.Default(), 1); err != nil {
		t.Errorf("New(default): %v", err)
	}
}

func TestStepOnlyWhilePlaying(t *testing.T) {
	sim := NewWithRandom(config.Default(), &engine.SequenceRandom{})
	sim.Step(frame)
	if sim.Elapsed() != 0 {
		t.Error("main menu advanced time")
	}

	sim.RequestState(core.StatePlaying)
	sim.Step(frame)
	if sim.Elapsed() != frame {
		t.Errorf("Elapsed = %s, want %s", sim.Elapsed(), frame)
	}

	sim.RequestState(core.StatePause)
	sim.Step(frame)
	if sim.Elapsed() != frame {
		t.Error("pause advanced time")
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from, to core.GameState
		ok       bool
	}{
		{core.StateMainMenu, core.StatePlaying, true},
		{core.StateMainMenu, core.StateLose, false},
		{core.StatePlaying, core.StatePause, true},
		{core.StatePlaying, core.StateLose, true},
		{core.StatePlaying, core.StateMainMenu, false},
		{core.StatePause, core.StatePlaying, true},
		{core.StatePause, core.StateMainMenu, true},
		{core.StateLose, core.StateMainMenu, true},
		{core.StateLose, core.StatePlaying, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.ok {
				t.Errorf("CanTransition = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestRejectionNotified(t *testing.T) {
	sim, rec := newPlaying(t)
	for i := 0; i < 7; i++ {
		sim.FireMissile(vmath.V(100, 100))
	}
	sim.Step(frame)

	if rec.count(event.EventActionRejected) != 1 {
		t.Errorf("rejections = %d, want 1", rec.count(event.EventActionRejected))
	}
	if n := len(sim.Snapshot().Missiles); n != 6 {
		t.Errorf("missiles = %d, want 6", n)
	}
}

func TestLoseThenMainMenuRestarts(t *testing.T) {
	tn := config.Default()
	tn.Player.HealthRechargeInterval = time.Hour
	sim, rec := newPlayingWith(t, tn)
	econ := sim.world.Resource.Economy
	for econ.Health() > 1 {
		econ.Damage()
	}

	// first wave spawns at (-600, -540) and reaches the planet well inside 30s
	run(sim, 30*time.Second)
	if sim.State() != core.StateLose {
		t.Fatalf("state = %s, want lose", sim.State())
	}
	if rec.count(event.EventGameOver) != 1 {
		t.Error("GameOver not notified once")
	}

	frozen := sim.Elapsed()
	sim.Step(frame)
	if sim.Elapsed() != frozen {
		t.Error("lose state advanced time")
	}

	if !sim.RequestState(core.StateMainMenu) {
		t.Fatal("lose -> main menu refused")
	}
	snap := sim.Snapshot()
	if snap.Health != 5 || len(snap.Enemies) != 0 || snap.Level != 0 {
		t.Errorf("run not reset: health=%d enemies=%d level=%d", snap.Health, len(snap.Enemies), snap.Level)
	}
	if rec.count(event.EventGameReset) != 1 {
		t.Error("GameReset not notified")
	}
}

func TestRestartDropsInputQueuedBeforeIt(t *testing.T) {
	sim, _ := newPlaying(t)
	sim.FireMissile(vmath.V(100, 0))
	sim.Shield(true)
	sim.Scan()

	sim.RestartGame()
	snap := sim.Snapshot()
	if snap.Energy != 6 || snap.MaxEnergy != 6 {
		t.Errorf("energy = %d/%d, want 6/6", snap.Energy, snap.MaxEnergy)
	}
	if len(snap.Missiles) != 0 || len(snap.Scans) != 0 {
		t.Errorf("missiles=%d scans=%d, want none", len(snap.Missiles), len(snap.Scans))
	}
	if snap.Shield.Visible {
		t.Error("shield raised after restart")
	}

	// Input issued after the restart reaches the fresh run
	sim.FireMissile(vmath.V(100, 0))
	sim.Step(frame)
	if snap := sim.Snapshot(); len(snap.Missiles) != 1 || snap.Energy != 5 {
		t.Errorf("post-restart fire: missiles=%d energy=%d, want 1 and 5", len(snap.Missiles), snap.Energy)
	}
}

func TestMainMenuAfterLoseDropsStaleInput(t *testing.T) {
	sim, _ := newPlaying(t)
	sim.world.RunSafe(func() {
		if !sim.transition(core.StateLose) {
			t.Error("playing -> lose refused")
		}
	})

	// Nothing ticks in Lose, so these stay queued
	sim.FireMissile(vmath.V(0, 100))
	sim.Shield(true)
	sim.Step(frame)

	if !sim.RequestState(core.StateMainMenu) {
		t.Fatal("lose -> main menu refused")
	}
	if !sim.RequestState(core.StatePlaying) {
		t.Fatal("main menu -> playing refused")
	}
	sim.Step(frame)

	snap := sim.Snapshot()
	if snap.Energy != 6 || len(snap.Missiles) != 0 || snap.Shield.Visible {
		t.Errorf("fresh run: energy=%d missiles=%d shield=%v, want 6, 0, false",
			snap.Energy, len(snap.Missiles), snap.Shield.Visible)
	}
}

func TestRestartGameWhilePaused(t *testing.T) {
	sim, _ := newPlaying(t)
	sim.Scan()
	sim.Step(frame)
	sim.RequestState(core.StatePause)

	sim.RestartGame()
	snap := sim.Snapshot()
	if len(snap.Scans) != 0 || snap.Energy != snap.MaxEnergy {
		t.Errorf("restart while paused: scans=%d energy=%d", len(snap.Scans), snap.Energy)
	}
	if sim.State() != core.StatePause {
		t.Error("restart changed game state")
	}
}

func TestSnapshot(t *testing.T) {
	sim, _ := newPlaying(t)
	sim.FireMissile(vmath.V(0, 300))
	sim.ToggleShield()
	sim.Step(frame)

	snap := sim.Snapshot()
	if snap.Planet.Radius != 24 || !snap.Planet.Visible {
		t.Errorf("planet = %+v", snap.Planet)
	}
	if !snap.Shield.Visible || snap.Shield.Radius != 60 {
		t.Errorf("shield = %+v", snap.Shield)
	}
	if len(snap.Missiles) != 1 || snap.Missiles[0].Target != vmath.V(0, 300) {
		t.Errorf("missiles = %+v", snap.Missiles)
	}
	if snap.Energy != 4 {
		t.Errorf("energy = %d, want 4", snap.Energy)
	}
	if len(snap.Upgrades) != economy.UpgradeCount {
		t.Errorf("upgrades = %d", len(snap.Upgrades))
	}
	if snap.NextWave != 10*time.Second {
		t.Errorf("next wave = %s", snap.NextWave)
	}

	sim.ToggleShield()
	sim.Step(frame)
	if sim.Snapshot().Shield.Visible {
		t.Error("second toggle did not drop the shield")
	}
}

func TestUpgradeAndAutoScan(t *testing.T) {
	sim, rec := newPlaying(t)
	sim.world.Resource.Economy.AddScore(100)
	sim.Upgrade(economy.UpgradeMaxEnergy)
	sim.Upgrade(economy.UpgradeMaxEnergy)
	sim.SetAutoScan(true, 3*time.Second)
	sim.Step(frame)

	var results []bool
	for _, ev := range rec.events {
		if p, ok := ev.Payload.(*event.UpgradeResultPayload); ok {
			results = append(results, p.OK)
		}
	}
	if len(results) != 2 || !results[0] || results[1] {
		t.Errorf("upgrade results = %v, want [true false]", results)
	}

	snap := sim.Snapshot()
	if snap.MaxEnergy != 7 || snap.Spent != 100 {
		t.Errorf("max energy = %d spent = %d", snap.MaxEnergy, snap.Spent)
	}
	if !snap.AutoScan || snap.AutoScanInterval != 3*time.Second {
		t.Errorf("auto-scan = %v %s", snap.AutoScan, snap.AutoScanInterval)
	}
}

func TestListenerMayCallBack(t *testing.T) {
	sim, _ := newPlaying(t)
	scanned := false
	sim.AddListener(ListenerFunc(func(ev event.GameEvent) {
		if ev.Type == event.EventActionRejected && !scanned {
			scanned = true
			sim.Scan()
		}
	}))

	for i := 0; i < 7; i++ {
		sim.FireMissile(vmath.V(50, 50))
	}
	sim.Step(frame)
	sim.Step(frame)
	if !scanned {
		t.Fatal("listener not called")
	}
}

func TestStatusTracksState(t *testing.T) {
	sim, _ := newPlaying(t)
	if got := sim.Status().Strings.Get("game.state").Load(); got != "playing" {
		t.Errorf("game.state = %q", got)
	}
}
