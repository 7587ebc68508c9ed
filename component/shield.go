package component

import "time"

// ShieldComponent is the planet's toggleable energy barrier
type ShieldComponent struct {
	Active bool

	// SinceCharge accumulates active time since the last upkeep payment
	SinceCharge time.Duration
}
