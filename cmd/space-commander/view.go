package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/game"
	"github.com/lixenwraith/space-commander/vmath"
)

const (
	hudRows = 2
	// fieldMargin leaves room around the border for the warning strips
	fieldMargin = 1.15
)

// view maps world coordinates (y up, origin at the planet) to terminal cells
// A cell is roughly twice as tall as it is wide, so rows cover twice the world distance
type view struct {
	cx, cy int
	sx, sy float64
}

func newView(w, h int, halfField float64) view {
	rows := max(h-hudRows, 1)
	w = max(w, 1)
	extent := halfField * fieldMargin
	sx := max(2*extent/float64(w), extent/float64(rows))
	return view{
		cx: w / 2,
		cy: hudRows + rows/2,
		sx: sx,
		sy: 2 * sx,
	}
}

func (v view) toScreen(p vmath.Vec2) (int, int) {
	return v.cx + int(math.Round(p.X/v.sx)), v.cy - int(math.Round(p.Y/v.sy))
}

func (v view) toWorld(x, y int) vmath.Vec2 {
	return vmath.V(float64(x-v.cx)*v.sx, float64(v.cy-y)*v.sy)
}

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlanet  = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleShield  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGhost   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleMissile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlast   = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleScan    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDying   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// draw renders one snapshot and shows it
func (u *ui) draw() {
	snap := u.sim.Snapshot()
	w, h := u.screen.Size()
	v := newView(w, h, snap.HalfField)

	u.screen.Clear()
	u.drawBorder(v, snap)
	for _, sc := range snap.Scans {
		st := styleScan
		if sc.Dying {
			st = styleDying
		}
		u.ring(v, sc.Pos, sc.Radius, '.', st)
	}
	u.disc(v, snap.Planet.Pos, snap.Planet.Radius, 'O', stylePlanet)
	if snap.Shield.Visible {
		u.ring(v, snap.Shield.Pos, snap.Shield.Radius, '*', styleShield)
	}
	for _, g := range snap.Ghosts {
		if g.Visible {
			u.point(v, g.Pos, 'x', styleGhost)
		}
	}
	for _, e := range snap.Enemies {
		if e.Visible {
			u.point(v, e.Pos, 'X', styleEnemy)
		}
	}
	for _, m := range snap.Missiles {
		if m.Exploded {
			u.disc(v, m.Pos, m.Radius, '#', styleBlast)
			continue
		}
		u.point(v, m.Target, '+', styleDim)
		u.point(v, m.Pos, '^', styleMissile)
	}
	u.point(v, u.cursor, '◎', styleCursor)
	u.drawHUD(w, snap)
	u.drawOverlay(w, h, snap)
	u.screen.Show()
}

// drawBorder outlines the field; a side with a pending wave turns red
func (u *ui) drawBorder(v view, snap game.Snapshot) {
	half := snap.HalfField
	x0, y0 := v.toScreen(vmath.V(-half, half))
	x1, y1 := v.toScreen(vmath.V(half, -half))

	edge := func(side core.Side) (rune, tcell.Style) {
		if snap.Warnings[side] {
			return '!', styleWarning
		}
		return '·', styleDim
	}

	r, st := edge(core.SideTop)
	for x := x0; x <= x1; x++ {
		u.screen.SetContent(x, y0, r, nil, st)
	}
	r, st = edge(core.SideBottom)
	for x := x0; x <= x1; x++ {
		u.screen.SetContent(x, y1, r, nil, st)
	}
	r, st = edge(core.SideLeft)
	for y := y0; y <= y1; y++ {
		u.screen.SetContent(x0, y, r, nil, st)
	}
	r, st = edge(core.SideRight)
	for y := y0; y <= y1; y++ {
		u.screen.SetContent(x1, y, r, nil, st)
	}
}

func (u *ui) point(v view, p vmath.Vec2, r rune, st tcell.Style) {
	x, y := v.toScreen(p)
	if y < hudRows {
		return
	}
	u.screen.SetContent(x, y, r, nil, st)
}

// ring samples a circle outline densely enough to close at any radius
func (u *ui) ring(v view, c vmath.Vec2, radius float64, r rune, st tcell.Style) {
	n := max(int(2*math.Pi*radius/v.sx), 8)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		u.point(v, c.Add(vmath.V(math.Cos(a), math.Sin(a)).Scale(radius)), r, st)
	}
}

// disc fills every cell whose center lies inside the circle, at least one cell
func (u *ui) disc(v view, c vmath.Vec2, radius float64, r rune, st tcell.Style) {
	cx, cy := v.toScreen(c)
	rx := int(radius / v.sx)
	ry := int(radius / v.sy)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			p := v.toWorld(cx+dx, cy+dy)
			if (dx == 0 && dy == 0) || vmath.CirclesOverlap(p, 0, c, radius) {
				u.point(v, p, r, st)
			}
		}
	}
}

func (u *ui) drawHUD(w int, snap game.Snapshot) {
	auto := "off"
	if snap.AutoScan {
		auto = snap.AutoScanInterval.Round(100 * time.Millisecond).String()
	}
	line := fmt.Sprintf(" %-8s E %d/%d  H %d/%d  P %d (+%d)  L%d  wave %d in %s  auto %s%s",
		snap.State, snap.Energy, snap.MaxEnergy, snap.Health, snap.MaxHealth,
		snap.Points, snap.Locked, snap.Level, snap.WaveSize,
		snap.NextWave.Round(time.Second), auto, u.muteLabel())
	u.text(0, 0, w, line, styleHUD)

	x := 1
	for i, up := range snap.Upgrades {
		key := (i + 1) % 10
		label := fmt.Sprintf("%d:%s", key, up.Upgrade)
		if up.Done {
			label += " ok"
		} else {
			label += fmt.Sprintf(" %d", up.Cost)
		}
		st := styleDim
		if !up.Done && up.Cost <= snap.Points {
			st = styleDefault
		}
		x += u.text(x, 1, w, label, st) + 2
	}
}

func (u *ui) muteLabel() string {
	if u.muted != nil && u.muted() {
		return "  muted"
	}
	return ""
}

func (u *ui) drawOverlay(w, h int, snap game.Snapshot) {
	var lines []string
	switch snap.State {
	case core.StateMainMenu:
		lines = []string{
			"SPACE COMMANDER",
			"",
			"Enter  start",
			"click/f  fire   right/s  scan   space  shield",
			"1-0  upgrades   a  auto-scan   p  pause   q  quit",
		}
	case core.StatePause:
		lines = []string{"PAUSED", "p or Enter to resume"}
	case core.StateLose:
		lines = []string{"PLANET LOST", fmt.Sprintf("survived %s", snap.Elapsed.Round(time.Second)), "Enter for menu"}
	default:
		return
	}
	y := hudRows + (h-hudRows-len(lines))/2
	for i, l := range lines {
		x := (w - len([]rune(l))) / 2
		u.text(x, y+i, w, l, styleHUD)
	}
}

// text writes s from (x, y) clipped to width w and returns the runes written
func (u *ui) text(x, y, w int, s string, st tcell.Style) int {
	n := 0
	for _, r := range s {
		if x+n >= w {
			break
		}
		u.screen.SetContent(x+n, y, r, nil, st)
		n++
	}
	return n
}
