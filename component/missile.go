package component

import (
	"time"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/vmath"
)

// MissilePhase represents lifecycle state
type MissilePhase uint8

const (
	MissilePhaseFlying   MissilePhase = iota // Traveling toward target
	MissilePhaseExploded                     // Reached target or hit an enemy, lingering
)

// MissileComponent holds missile entity state (pure data)
type MissileComponent struct {
	Target vmath.Vec2
	Phase  MissilePhase
	Marker core.Entity

	// SinceExplosion accumulates only after the missile exploded
	SinceExplosion time.Duration

	// Killed is set when this missile destroyed an enemy
	Killed bool

	// Lead is false for free cluster sub-missiles
	Lead bool
}

// MarkerComponent is the aim reticle paired with a missile
type MarkerComponent struct {
	Missile core.Entity
}
