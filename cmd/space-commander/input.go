package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/game"
	"github.com/lixenwraith/space-commander/vmath"
)

// commands is the slice of the simulation the terminal drives
type commands interface {
	FireMissile(target vmath.Vec2)
	Scan()
	ToggleShield()
	Upgrade(u economy.Upgrade)
	SetAutoScan(enabled bool, interval time.Duration)
	RequestState(to core.GameState) bool
	RestartGame()
	State() core.GameState
	Snapshot() game.Snapshot
}

// pauser freezes and resumes real-time stepping
type pauser interface {
	Pause()
	Resume()
}

// ui maps terminal input to simulation commands and draws snapshots
type ui struct {
	screen tcell.Screen
	sim    commands
	clock  pauser

	// cursor in world coordinates, for keyboard aiming
	cursor  vmath.Vec2
	buttons tcell.ButtonMask

	mute  func(bool)
	muted func() bool
}

func newUI(screen tcell.Screen, sim commands, clock pauser) *ui {
	return &ui{screen: screen, sim: sim, clock: clock}
}

const (
	cursorStep   = 20.0
	autoScanStep = time.Second
)

// handle applies one terminal event; returns true to quit
func (u *ui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return false
}

func (u *ui) handleKey(ev *tcell.EventKey) bool {
	return u.handleKeyCode(ev.Key(), ev.Rune())
}

// handleKeyCode applies one key; r is meaningful only for tcell.KeyRune
func (u *ui) handleKeyCode(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		u.advance()
	case tcell.KeyUp:
		u.moveCursor(0, cursorStep)
	case tcell.KeyDown:
		u.moveCursor(0, -cursorStep)
	case tcell.KeyLeft:
		u.moveCursor(-cursorStep, 0)
	case tcell.KeyRight:
		u.moveCursor(cursorStep, 0)
	case tcell.KeyRune:
		return u.handleRune(r)
	}
	return false
}

func (u *ui) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		u.sim.ToggleShield()
	case 's':
		u.sim.Scan()
	case 'f':
		u.sim.FireMissile(u.cursor)
	case 'a':
		snap := u.sim.Snapshot()
		u.sim.SetAutoScan(!snap.AutoScan, snap.AutoScanInterval)
	case '+', '=':
		snap := u.sim.Snapshot()
		u.sim.SetAutoScan(snap.AutoScan, snap.AutoScanInterval+autoScanStep)
	case '-':
		snap := u.sim.Snapshot()
		u.sim.SetAutoScan(snap.AutoScan, max(snap.AutoScanInterval-autoScanStep, time.Millisecond))
	case 'p':
		u.togglePause()
	case 'r':
		u.sim.RestartGame()
	case 'm':
		if u.mute != nil && u.muted != nil {
			u.mute(!u.muted())
		}
	default:
		if up, ok := upgradeKey(r); ok {
			u.sim.Upgrade(up)
		}
	}
	return false
}

// upgradeKey maps 1-9 and 0 to the upgrade catalog in order
func upgradeKey(r rune) (economy.Upgrade, bool) {
	var i int
	switch {
	case r >= '1' && r <= '9':
		i = int(r - '1')
	case r == '0':
		i = 9
	default:
		return 0, false
	}
	if i >= economy.UpgradeCount {
		return 0, false
	}
	return economy.Upgrade(i), true
}

// advance moves through menu, defeat and back
func (u *ui) advance() {
	switch u.sim.State() {
	case core.StateMainMenu:
		u.sim.RequestState(core.StatePlaying)
	case core.StateLose:
		u.sim.RequestState(core.StateMainMenu)
	case core.StatePause:
		u.clock.Resume()
	}
}

func (u *ui) togglePause() {
	switch u.sim.State() {
	case core.StatePlaying:
		u.clock.Pause()
	case core.StatePause:
		u.clock.Resume()
	}
}

func (u *ui) moveCursor(dx, dy float64) {
	half := u.sim.Snapshot().HalfField
	u.cursor = vmath.V(
		vmath.Clamp(u.cursor.X+dx, -half, half),
		vmath.Clamp(u.cursor.Y+dy, -half, half),
	)
}

// handleMouse fires on left press and scans on right press; drags do not repeat
func (u *ui) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons() &^ u.buttons
	u.buttons = ev.Buttons()
	if pressed == 0 {
		return
	}

	x, y := ev.Position()
	w, h := u.screen.Size()
	v := newView(w, h, u.sim.Snapshot().HalfField)

	if pressed&tcell.Button1 != 0 {
		u.cursor = v.toWorld(x, y)
		u.sim.FireMissile(u.cursor)
	}
	if pressed&tcell.Button2 != 0 {
		u.sim.Scan()
	}
}
