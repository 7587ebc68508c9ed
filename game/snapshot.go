package game

import (
	"time"

	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/vmath"
)

// Body is a positioned circle as a renderer needs it
type Body struct {
	ID      core.Entity
	Pos     vmath.Vec2
	Radius  float64
	Visible bool
}

type MissileView struct {
	Body
	Target   vmath.Vec2
	Exploded bool
}

type ScanView struct {
	Body
	Dying bool
}

type UpgradeView struct {
	Upgrade economy.Upgrade
	Cost    int
	// Done is true for owned supers and capped stats
	Done bool
}

// Snapshot is a read-only copy of everything a front end draws
type Snapshot struct {
	State   core.GameState
	Elapsed time.Duration

	Planet   Body
	Shield   Body
	Enemies  []Body
	Ghosts   []Body
	Missiles []MissileView
	Scans    []ScanView

	Energy, MaxEnergy int
	Health, MaxHealth int
	Points, Locked    int
	Spent             int
	Upgrades          []UpgradeView

	AutoScan         bool
	AutoScanInterval time.Duration

	Level     int
	WaveSize  int
	Speed     float64
	NextWave  time.Duration
	Warnings  [core.SideCount]bool
	HalfField float64
}

// Snapshot copies the current world state under the world lock
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.world.RunSafe(func() {
		w := s.world
		c := w.Components
		res := w.Resource

		body := func(e core.Entity) Body {
			k, _ := c.Kinetic.Get(e)
			col, _ := c.Collider.Get(e)
			v, _ := c.Visibility.Get(e)
			return Body{ID: e, Pos: k.Pos, Radius: col.Radius, Visible: v.Visible}
		}

		snap.State = res.Game.State
		snap.Elapsed = res.Time.Elapsed
		snap.Planet = body(res.PlayerBody)
		snap.Shield = body(s.shield.Entity())

		for _, e := range c.Enemy.All() {
			snap.Enemies = append(snap.Enemies, body(e))
		}
		for _, e := range c.Ghost.All() {
			snap.Ghosts = append(snap.Ghosts, body(e))
		}
		for _, e := range c.Missile.All() {
			m, _ := c.Missile.Get(e)
			snap.Missiles = append(snap.Missiles, MissileView{
				Body:     body(e),
				Target:   m.Target,
				Exploded: m.Phase == component.MissilePhaseExploded,
			})
		}
		for _, e := range c.Scan.All() {
			sc, _ := c.Scan.Get(e)
			snap.Scans = append(snap.Scans, ScanView{Body: body(e), Dying: sc.Dying})
		}

		econ := res.Economy
		snap.Energy, snap.MaxEnergy = econ.Energy(), econ.MaxEnergy.Current
		snap.Health, snap.MaxHealth = econ.Health(), econ.MaxHealth.Current
		snap.Points, snap.Locked, snap.Spent = econ.CurrentPoints(), econ.LockedScore(), econ.AllTimeSpent()
		for i := 0; i < economy.UpgradeCount; i++ {
			u := economy.Upgrade(i)
			snap.Upgrades = append(snap.Upgrades, UpgradeView{Upgrade: u, Cost: econ.Cost(u), Done: econ.Maxed(u)})
		}

		snap.AutoScan, snap.AutoScanInterval = s.scan.AutoScan()

		st := res.Director.State
		snap.Level, snap.WaveSize, snap.Speed = st.Level, st.WaveSize, st.EnemySpeed
		snap.NextWave = res.Director.NextFire()
		for side := range snap.Warnings {
			snap.Warnings[side] = res.Warning.Lit(core.Side(side))
		}
		snap.HalfField = res.Tuning.Field.HalfExtent
	})
	return snap
}
