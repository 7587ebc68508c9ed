package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/game"
	"github.com/lixenwraith/space-commander/vmath"
)

// fakeInput reports each queued key or button as pressed for one frame
type fakeInput struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.MouseButton]bool
	x, y    int
}

func (f *fakeInput) keyPressed(k ebiten.Key) bool            { return f.keys[k] }
func (f *fakeInput) mousePressed(b ebiten.MouseButton) bool { return f.buttons[b] }
func (f *fakeInput) cursor() (int, int)                     { return f.x, f.y }

func (f *fakeInput) press(keys ...ebiten.Key) {
	f.keys = map[ebiten.Key]bool{}
	for _, k := range keys {
		f.keys[k] = true
	}
	f.buttons = nil
}

func (f *fakeInput) click(b ebiten.MouseButton, x, y int) {
	f.keys = nil
	f.buttons = map[ebiten.MouseButton]bool{b: true}
	f.x, f.y = x, y
}

func newTestApp(t *testing.T) (*app, *fakeInput, *[]event.GameEvent) {
	t.Helper()
	sim, err := game.New(config.Default(), 7)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	var seen []event.GameEvent
	sim.AddListener(game.ListenerFunc(func(ev event.GameEvent) { seen = append(seen, ev) }))
	in := &fakeInput{}
	return newApp(sim, in), in, &seen
}

func TestEnterStartsAndPauseToggles(t *testing.T) {
	a, in, _ := newTestApp(t)

	in.press(ebiten.KeyEnter)
	a.handleInput()
	if got := a.sim.State(); got != core.StatePlaying {
		t.Fatalf("state %v, want playing", got)
	}

	in.press(ebiten.KeyP)
	a.handleInput()
	if got := a.sim.State(); got != core.StatePause {
		t.Fatalf("state %v, want pause", got)
	}
	in.press(ebiten.KeyEnter)
	a.handleInput()
	if got := a.sim.State(); got != core.StatePlaying {
		t.Errorf("state %v, want playing", got)
	}
}

func TestQuitKey(t *testing.T) {
	a, in, _ := newTestApp(t)
	in.press(ebiten.KeyQ)
	if err := a.Update(); err != ebiten.Termination {
		t.Errorf("Update returned %v, want ebiten.Termination", err)
	}
}

func TestClickFiresAtWorldPoint(t *testing.T) {
	a, in, _ := newTestApp(t)
	in.press(ebiten.KeyEnter)
	a.handleInput()

	target := vmath.V(120, -80)
	x, y := a.view().toScreen(target)
	in.click(ebiten.MouseButtonLeft, int(x), int(y))
	a.handleInput()
	a.sim.Step(time.Millisecond)

	snap := a.sim.Snapshot()
	if len(snap.Missiles) == 0 {
		t.Fatal("no missile launched")
	}
	if d := snap.Missiles[0].Target.Dist(target); d > 2 {
		t.Errorf("missile target %v is %.1f from %v", snap.Missiles[0].Target, d, target)
	}
}

func TestUpgradeKeyRequestsUpgrade(t *testing.T) {
	a, in, seen := newTestApp(t)
	in.press(ebiten.KeyEnter)
	a.handleInput()

	in.press(upgradeKeys[0])
	a.handleInput()
	a.sim.Step(time.Millisecond)

	var results []*event.UpgradeResultPayload
	for _, ev := range *seen {
		if ev.Type == event.EventUpgradeResult {
			results = append(results, ev.Payload.(*event.UpgradeResultPayload))
		}
	}
	if len(results) != 1 {
		t.Fatalf("got %d upgrade results, want 1", len(results))
	}
	// A fresh run has no points to spend
	if results[0].Upgrade != economy.Upgrade(0) || results[0].OK {
		t.Errorf("result %+v, want refused %v", *results[0], economy.Upgrade(0))
	}
}

func TestAutoScanKeys(t *testing.T) {
	a, in, _ := newTestApp(t)
	in.press(ebiten.KeyEnter)
	a.handleInput()
	before := a.sim.Snapshot().AutoScanInterval

	in.press(ebiten.KeyA)
	a.handleInput()
	a.sim.Step(time.Millisecond)
	in.press(ebiten.KeyEqual)
	a.handleInput()
	a.sim.Step(time.Millisecond)

	snap := a.sim.Snapshot()
	if !snap.AutoScan {
		t.Error("auto-scan not enabled")
	}
	if snap.AutoScanInterval != before+autoScanStep {
		t.Errorf("interval %v, want %v", snap.AutoScanInterval, before+autoScanStep)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := newView(screenWidth, screenHeight, 300)
	p := vmath.V(-250, 175)
	x, y := v.toScreen(p)
	if got := v.toWorld(float64(x), float64(y)); got.Dist(p) > 0.01 {
		t.Errorf("round trip %v, want %v", got, p)
	}
	_, y0 := v.toScreen(vmath.V(0, 300*fieldMargin))
	if y0 < hudHeight-0.5 {
		t.Errorf("field top %v overlaps the HUD", y0)
	}
}

func TestOverlayPerState(t *testing.T) {
	for _, st := range []core.GameState{core.StateMainMenu, core.StatePause, core.StateLose} {
		if len(overlayLines(game.Snapshot{State: st})) == 0 {
			t.Errorf("no overlay for %v", st)
		}
	}
	if lines := overlayLines(game.Snapshot{State: core.StatePlaying}); lines != nil {
		t.Errorf("overlay while playing: %v", lines)
	}
}
