package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/game"
	"github.com/lixenwraith/space-commander/vmath"
)

func TestViewRoundTrip(t *testing.T) {
	v := newView(120, 40, 300)
	for _, c := range [][2]int{{0, hudRows}, {60, 21}, {119, 39}, {7, 33}} {
		x, y := v.toScreen(v.toWorld(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("round trip of %v gave (%d, %d)", c, x, y)
		}
	}
}

func TestViewFitsField(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {200, 30}, {40, 60}} {
		w, h := size[0], size[1]
		v := newView(w, h, 300)
		x0, y0 := v.toScreen(vmath.V(-300, 300))
		x1, y1 := v.toScreen(vmath.V(300, -300))
		if x0 < 0 || x1 >= w || y0 < hudRows || y1 >= h {
			t.Errorf("%dx%d: field spans (%d,%d)-(%d,%d)", w, h, x0, y0, x1, y1)
		}
	}
}

func TestViewYAxisPointsUp(t *testing.T) {
	v := newView(80, 40, 300)
	_, yTop := v.toScreen(vmath.V(0, 100))
	_, yBottom := v.toScreen(vmath.V(0, -100))
	if yTop >= yBottom {
		t.Errorf("positive world y drew below negative: %d >= %d", yTop, yBottom)
	}
}

func cell(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawPlanetAndWarning(t *testing.T) {
	u, sim, _ := newTestUI(t)
	sim.snap.Planet = game.Body{Radius: 24, Visible: true}
	sim.snap.Warnings[core.SideLeft] = true
	u.cursor = vmath.V(200, 200)
	u.draw()

	s := u.screen.(tcell.SimulationScreen)
	w, h := s.Size()
	v := newView(w, h, sim.snap.HalfField)

	x, y := v.toScreen(vmath.Vec2{})
	if got := cell(t, s, x, y); got != 'O' {
		t.Errorf("planet cell %q, want 'O'", got)
	}
	lx, _ := v.toScreen(vmath.V(-sim.snap.HalfField, 0))
	if got := cell(t, s, lx, y); got != '!' {
		t.Errorf("left border %q, want '!'", got)
	}
	rx, _ := v.toScreen(vmath.V(sim.snap.HalfField, 0))
	if got := cell(t, s, rx, y); got == '!' {
		t.Error("right border lit without a warning")
	}
}

func TestDrawHidesUnrevealedEnemies(t *testing.T) {
	u, sim, _ := newTestUI(t)
	sim.snap.Enemies = []game.Body{
		{Pos: vmath.V(150, 0), Radius: 5, Visible: false},
		{Pos: vmath.V(-150, 0), Radius: 5, Visible: true},
	}
	u.draw()

	s := u.screen.(tcell.SimulationScreen)
	w, h := s.Size()
	v := newView(w, h, sim.snap.HalfField)
	hx, hy := v.toScreen(sim.snap.Enemies[0].Pos)
	sx, sy := v.toScreen(sim.snap.Enemies[1].Pos)
	if got := cell(t, s, hx, hy); got == 'X' {
		t.Error("hidden enemy drawn")
	}
	if got := cell(t, s, sx, sy); got != 'X' {
		t.Errorf("revealed enemy cell %q, want 'X'", got)
	}
}

func TestDrawLiveSimulation(t *testing.T) {
	sim, err := game.New(config.Default(), 1)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if !sim.RequestState(core.StatePlaying) {
		t.Fatal("could not start")
	}
	for range 100 {
		sim.Step(16 * time.Millisecond)
	}
	sim.FireMissile(vmath.V(100, 100))
	sim.Scan()
	sim.Step(16 * time.Millisecond)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 40)

	u := newUI(screen, sim, &fakeClock{})
	u.draw()

	var hud []rune
	for x := 1; x < 8; x++ {
		hud = append(hud, cell(t, screen, x, 0))
	}
	if string(hud) != core.StatePlaying.String() {
		t.Errorf("hud starts %q, want %q", string(hud), core.StatePlaying)
	}
}
