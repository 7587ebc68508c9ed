package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/game"
	"github.com/lixenwraith/space-commander/vmath"
)

const (
	hudHeight    = 48
	fieldMargin  = 1.1
	lineHeight   = 16
	autoScanStep = time.Second
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// app adapts the simulation to ebiten's fixed-rate Update/Draw loop
type app struct {
	sim *game.Simulation
	in  input

	mute  func(bool)
	muted func() bool
	quit  bool
}

func newApp(sim *game.Simulation, in input) *app {
	return &app{sim: sim, in: in}
}

// frameStep is the game time advanced per Update at the current tick rate
func frameStep() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (a *app) Update() error {
	a.handleInput()
	if a.quit {
		return ebiten.Termination
	}
	a.sim.Step(frameStep())
	return nil
}

func (a *app) handleInput() {
	in := a.in
	switch {
	case in.keyPressed(ebiten.KeyEscape), in.keyPressed(ebiten.KeyQ):
		a.quit = true
		return
	case in.keyPressed(ebiten.KeyEnter):
		a.advance()
	case in.keyPressed(ebiten.KeyP):
		a.togglePause()
	case in.keyPressed(ebiten.KeyR):
		a.sim.RestartGame()
	case in.keyPressed(ebiten.KeyM):
		if a.mute != nil && a.muted != nil {
			a.mute(!a.muted())
		}
	}

	if in.keyPressed(ebiten.KeySpace) {
		a.sim.ToggleShield()
	}
	if in.keyPressed(ebiten.KeyS) || in.mousePressed(ebiten.MouseButtonRight) {
		a.sim.Scan()
	}
	if in.mousePressed(ebiten.MouseButtonLeft) {
		x, y := in.cursor()
		a.sim.FireMissile(a.view().toWorld(float64(x), float64(y)))
	}

	snap := a.sim.Snapshot()
	switch {
	case in.keyPressed(ebiten.KeyA):
		a.sim.SetAutoScan(!snap.AutoScan, snap.AutoScanInterval)
	case in.keyPressed(ebiten.KeyEqual):
		a.sim.SetAutoScan(snap.AutoScan, snap.AutoScanInterval+autoScanStep)
	case in.keyPressed(ebiten.KeyMinus):
		a.sim.SetAutoScan(snap.AutoScan, max(snap.AutoScanInterval-autoScanStep, time.Millisecond))
	}

	for i, k := range upgradeKeys {
		if i < economy.UpgradeCount && in.keyPressed(k) {
			a.sim.Upgrade(economy.Upgrade(i))
		}
	}
}

func (a *app) advance() {
	switch a.sim.State() {
	case core.StateMainMenu, core.StatePause:
		a.sim.RequestState(core.StatePlaying)
	case core.StateLose:
		a.sim.RequestState(core.StateMainMenu)
	}
}

func (a *app) togglePause() {
	switch a.sim.State() {
	case core.StatePlaying:
		a.sim.RequestState(core.StatePause)
	case core.StatePause:
		a.sim.RequestState(core.StatePlaying)
	}
}

// view maps world coordinates (y up, planet at origin) to window pixels
type view struct {
	cx, cy, scale float64
}

func (a *app) view() view {
	return newView(screenWidth, screenHeight, a.sim.Tuning().Field.HalfExtent)
}

func newView(w, h int, halfField float64) view {
	side := min(float64(w), float64(h-hudHeight))
	return view{
		cx:    float64(w) / 2,
		cy:    hudHeight + float64(h-hudHeight)/2,
		scale: side / (2 * halfField * fieldMargin),
	}
}

func (v view) toScreen(p vmath.Vec2) (float32, float32) {
	return float32(v.cx + p.X*v.scale), float32(v.cy - p.Y*v.scale)
}

func (v view) toWorld(x, y float64) vmath.Vec2 {
	return vmath.V((x-v.cx)/v.scale, (v.cy-y)/v.scale)
}

func (v view) length(d float64) float32 { return float32(d * v.scale) }

func (a *app) Draw(screen *ebiten.Image) {
	snap := a.sim.Snapshot()
	v := newView(screenWidth, screenHeight, snap.HalfField)
	screen.Fill(colornames.Black)

	a.drawField(screen, v, snap)
	for _, sc := range snap.Scans {
		col := colornames.Limegreen
		if sc.Dying {
			col = colornames.Mediumpurple
		}
		x, y := v.toScreen(sc.Pos)
		vector.StrokeCircle(screen, x, y, v.length(sc.Radius), 1, col, true)
	}

	px, py := v.toScreen(snap.Planet.Pos)
	vector.DrawFilledCircle(screen, px, py, v.length(snap.Planet.Radius), colornames.Dodgerblue, true)
	if snap.Shield.Visible {
		x, y := v.toScreen(snap.Shield.Pos)
		vector.StrokeCircle(screen, x, y, v.length(snap.Shield.Radius), 2, colornames.Aqua, true)
	}

	for _, g := range snap.Ghosts {
		if g.Visible {
			x, y := v.toScreen(g.Pos)
			vector.StrokeCircle(screen, x, y, v.length(g.Radius), 1, colornames.Darkred, true)
		}
	}
	for _, e := range snap.Enemies {
		if e.Visible {
			x, y := v.toScreen(e.Pos)
			vector.DrawFilledCircle(screen, x, y, v.length(e.Radius), colornames.Crimson, true)
		}
	}
	for _, m := range snap.Missiles {
		x, y := v.toScreen(m.Pos)
		if m.Exploded {
			vector.DrawFilledCircle(screen, x, y, v.length(m.Radius), colornames.Orange, true)
			continue
		}
		tx, ty := v.toScreen(m.Target)
		vector.StrokeLine(screen, tx-4, ty-4, tx+4, ty+4, 1, colornames.Gray, true)
		vector.StrokeLine(screen, tx-4, ty+4, tx+4, ty-4, 1, colornames.Gray, true)
		vector.DrawFilledCircle(screen, x, y, max(v.length(m.Radius), 2), colornames.Yellow, true)
	}

	a.drawHUD(screen, snap)
	a.drawOverlay(screen, snap)
}

// drawField outlines the play field; sides with a pending wave turn red
func (a *app) drawField(screen *ebiten.Image, v view, snap game.Snapshot) {
	half := snap.HalfField
	x0, y0 := v.toScreen(vmath.V(-half, half))
	x1, y1 := v.toScreen(vmath.V(half, -half))

	edge := func(side core.Side) (color.Color, float32) {
		if snap.Warnings[side] {
			return colornames.Red, 4
		}
		return colornames.Dimgray, 1
	}
	col, w := edge(core.SideTop)
	vector.StrokeLine(screen, x0, y0, x1, y0, w, col, true)
	col, w = edge(core.SideBottom)
	vector.StrokeLine(screen, x0, y1, x1, y1, w, col, true)
	col, w = edge(core.SideLeft)
	vector.StrokeLine(screen, x0, y0, x0, y1, w, col, true)
	col, w = edge(core.SideRight)
	vector.StrokeLine(screen, x1, y0, x1, y1, w, col, true)
}

func drawText(screen *ebiten.Image, s string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, hudFace, op)
}

func (a *app) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, hudHeight, colornames.Midnightblue, false)
	drawText(screen, hudLine(snap, a.muted != nil && a.muted()), 8, 6, colornames.White)

	var b strings.Builder
	for i, up := range snap.Upgrades {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%d:%s", (i+1)%10, up.Upgrade)
		if up.Done {
			b.WriteString(" ok")
		} else {
			fmt.Fprintf(&b, " %d", up.Cost)
		}
	}
	drawText(screen, b.String(), 8, 6+lineHeight, colornames.Lightgray)
}

func hudLine(snap game.Snapshot, muted bool) string {
	auto := "off"
	if snap.AutoScan {
		auto = snap.AutoScanInterval.Round(100 * time.Millisecond).String()
	}
	line := fmt.Sprintf("%-9s energy %d/%d  health %d/%d  points %d (+%d locked)  level %d  wave %d in %s  auto-scan %s",
		snap.State, snap.Energy, snap.MaxEnergy, snap.Health, snap.MaxHealth,
		snap.Points, snap.Locked, snap.Level, snap.WaveSize, snap.NextWave.Round(time.Second), auto)
	if muted {
		line += "  muted"
	}
	return line
}

func overlayLines(snap game.Snapshot) []string {
	switch snap.State {
	case core.StateMainMenu:
		return []string{
			"SPACE COMMANDER",
			"",
			"Enter: start",
			"left click: fire   right click / S: scan   space: shield",
			"1-0: upgrades   A: auto-scan   +/-: interval   P: pause   Q: quit",
		}
	case core.StatePause:
		return []string{"PAUSED", "P or Enter to resume"}
	case core.StateLose:
		return []string{"PLANET LOST", "survived " + snap.Elapsed.Round(time.Second).String(), "Enter for menu"}
	}
	return nil
}

func (a *app) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	lines := overlayLines(snap)
	if len(lines) == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, hudHeight, screenWidth, screenHeight-hudHeight, color.RGBA{A: 160}, false)
	y := float64(screenHeight-len(lines)*lineHeight) / 2
	for i, l := range lines {
		w, _ := text.Measure(l, hudFace, lineHeight)
		drawText(screen, l, (screenWidth-w)/2, y+float64(i*lineHeight), colornames.White)
	}
}

func (a *app) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}
