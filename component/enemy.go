package component

import (
	"time"

	"github.com/lixenwraith/space-commander/core"
)

// EnemyComponent marks a hostile unit homing on the planet
type EnemyComponent struct {
	Ghost core.Entity
	Side  core.Side
}

// GhostComponent is the last-known-position marker paired with an enemy
// Orphaned ghosts outlived their enemy and despawn on the next scan contact
type GhostComponent struct {
	Enemy    core.Entity
	Orphaned bool
}

// VisibilityComponent drives whether presentation draws the entity
type VisibilityComponent struct {
	Visible bool
}

// RevealComponent counts down an active reveal; removed on expiry
type RevealComponent struct {
	Remaining time.Duration
}

// ScannedComponent tags an entity first touched by a scan this tick
type ScannedComponent struct{}

// DestroyedComponent tags an enemy for removal in the cleanup phase
type DestroyedComponent struct {
	Cause core.KillCause
}

// PlanetComponent marks the player planet
type PlanetComponent struct{}
