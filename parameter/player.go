package parameter

import "time"

// Energy
const (
	EnergyMax              = 6
	EnergyRechargeInterval = 4 * time.Second
	EnergyPerRecharge      = 1
)

// Health
const (
	HealthMax              = 5
	HealthRechargeInterval = 20 * time.Second
	HealthPerRecharge      = 1
)

// Score awarded for each missile kill
const ScorePerKill = 10

// PlanetRadius is the player planet collider (ball 8 at scale 3)
const PlanetRadius = 24.0
