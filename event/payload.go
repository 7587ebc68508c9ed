package event

import (
	"time"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/vmath"
)

// FireMissilePayload targets a missile strike
type FireMissilePayload struct {
	Target vmath.Vec2
	// Free skips the energy cost (cluster sub-missiles)
	Free bool
}

// ScanRequestPayload marks where a scan request came from
type ScanRequestPayload struct {
	Auto bool
}

// ShieldTogglePayload carries the requested shield state
type ShieldTogglePayload struct {
	Active bool
}

// UpgradeRequestPayload names the upgrade to buy
type UpgradeRequestPayload struct {
	Upgrade economy.Upgrade
}

// AutoScanConfigPayload reconfigures the auto-scan timer
// Interval is clamped to the configured bounds; zero keeps the current interval
type AutoScanConfigPayload struct {
	Enabled  bool
	Interval time.Duration
}

// ScorePayload credits points
type ScorePayload struct {
	Amount int
}

// ScoreChangedPayload snapshots both score pools
type ScoreChangedPayload struct {
	Current int
	Locked  int
}

// EnemyKilledPayload locates a kill
type EnemyKilledPayload struct {
	Location vmath.Vec2
}

// PlanetDamagedPayload carries remaining health
type PlanetDamagedPayload struct {
	Health int
}

// EnemySpawnedPayload names the spawn border
type EnemySpawnedPayload struct {
	Side core.Side
}

// GameOverPayload carries the final locked score
type GameOverPayload struct {
	Score int
}

// StateRequestPayload names the requested game state
type StateRequestPayload struct {
	State core.GameState
}

// ActionRejectedPayload names the refused action
type ActionRejectedPayload struct {
	Action core.Action
}

// UpgradeResultPayload reports a purchase attempt
type UpgradeResultPayload struct {
	Upgrade economy.Upgrade
	OK      bool
}

// DifficultyPayload snapshots difficulty after a growth tick
type DifficultyPayload struct {
	Level     int
	WaveSize  int
	Speed     float64
	Interval  time.Duration
	Milestone bool
}
