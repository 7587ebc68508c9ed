// Package economy owns the player's energy, health, score pools and upgrade state
package economy

import (
	"time"

	"github.com/lixenwraith/space-commander/config"
)

// Economy is the single mutable ledger of a run
// Every mutator is cost-checked or clamped; no field goes negative
type Economy struct {
	energy         int
	MaxEnergy      Stat[int]
	EnergyRecharge Stat[time.Duration]
	energyPer      int
	energyTimer    time.Duration
	regenDisabled  bool

	health         int
	MaxHealth      Stat[int]
	HealthRecharge Stat[time.Duration]
	healthPer      int
	healthTimer    time.Duration

	currentPoints int
	lockedScore   int
	allTimeSpent  int

	ScanSpeed    Stat[float64]
	MissileSpeed Stat[float64]

	supers [UpgradeCount]Super

	MissileCost int
	ScanCost    int
	ShieldCost  int
}

// New builds a full-energy, full-health economy with zero score
func New(t config.Tuning) *Economy {
	u := t.Upgrades
	e := &Economy{
		energy:         t.Player.MaxEnergy,
		MaxEnergy:      rising(t.Player.MaxEnergy, u.MaxEnergy.Step, u.MaxEnergy.Cap, u.MaxEnergy.Cost),
		EnergyRecharge: falling(t.Player.EnergyRechargeInterval, u.EnergyRecharge.Step, u.EnergyRecharge.Floor, u.EnergyRecharge.Cost),
		energyPer:      t.Player.EnergyPerRecharge,

		health:         t.Player.MaxHealth,
		MaxHealth:      rising(t.Player.MaxHealth, u.MaxHealth.Step, u.MaxHealth.Cap, u.MaxHealth.Cost),
		HealthRecharge: falling(t.Player.HealthRechargeInterval, u.HealthRecharge.Step, u.HealthRecharge.Floor, u.HealthRecharge.Cost),
		healthPer:      t.Player.HealthPerRecharge,

		ScanSpeed:    rising(t.Scan.Speed, u.ScanSpeed.Step, u.ScanSpeed.Cap, u.ScanSpeed.Cost),
		MissileSpeed: rising(t.Missile.Speed, u.MissileSpeed.Step, u.MissileSpeed.Cap, u.MissileSpeed.Cost),

		MissileCost: t.Missile.EnergyCost,
		ScanCost:    t.Scan.EnergyCost,
		ShieldCost:  t.Shield.EnergyCost,
	}
	e.supers[UpgradeClusterMissile].Cost = u.ClusterMissileCost
	e.supers[UpgradeEnergyVampire].Cost = u.EnergyVampireCost
	e.supers[UpgradeDyingScanners].Cost = u.DyingScannersCost
	e.supers[UpgradeLargerMissiles].Cost = u.LargerMissilesCost
	return e
}

// === Energy ===

func (e *Economy) Energy() int { return e.energy }

// HasEnergy reports whether amount can be spent now
func (e *Economy) HasEnergy(amount int) bool {
	return e.energy >= amount
}

// SpendEnergy deducts amount, clamping at zero
// Callers gate with HasEnergy; the clamp only guards misuse
func (e *Economy) SpendEnergy(amount int) {
	if amount <= 0 {
		return
	}
	e.energy = max(e.energy-amount, 0)
}

// TrySpendEnergy spends amount only if it is fully available
func (e *Economy) TrySpendEnergy(amount int) bool {
	if !e.HasEnergy(amount) {
		return false
	}
	e.SpendEnergy(amount)
	return true
}

// RefundEnergy returns energy, clamped to the current maximum
func (e *Economy) RefundEnergy(amount int) {
	if amount <= 0 {
		return
	}
	e.energy = min(e.energy+amount, e.MaxEnergy.Current)
}

// SetRegen toggles passive energy regeneration; the shield disables it while up
func (e *Economy) SetRegen(enabled bool) {
	e.regenDisabled = !enabled
	if !enabled {
		e.energyTimer = 0
	}
}

// RegenEnabled reports whether energy regeneration is running
func (e *Economy) RegenEnabled() bool { return !e.regenDisabled }

// === Health ===

func (e *Economy) Health() int { return e.health }

// Damage removes one health, clamped at zero
// Returns true when the planet is defeated
func (e *Economy) Damage() bool {
	if e.health > 0 {
		e.health--
	}
	return e.health == 0
}

// === Recharge ===

// RechargeTick advances both recharge timers by dt
// Timers only run while below maximum; energy is frozen while regen is disabled
func (e *Economy) RechargeTick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if !e.regenDisabled {
		e.energy, e.energyTimer = recharge(e.energy, e.MaxEnergy.Current, e.energyPer, e.energyTimer+dt, e.EnergyRecharge.Current)
	}
	e.health, e.healthTimer = recharge(e.health, e.MaxHealth.Current, e.healthPer, e.healthTimer+dt, e.HealthRecharge.Current)
}

func recharge(current, maximum, per int, timer, interval time.Duration) (int, time.Duration) {
	if current >= maximum || interval <= 0 {
		return current, 0
	}
	for timer >= interval && current < maximum {
		timer -= interval
		current = min(current+per, maximum)
	}
	if current >= maximum {
		timer = 0
	}
	return current, timer
}

// === Score ===

func (e *Economy) CurrentPoints() int { return e.currentPoints }
func (e *Economy) LockedScore() int   { return e.lockedScore }
func (e *Economy) AllTimeSpent() int  { return e.allTimeSpent }

// EarnedScore is every point gained this run, spent or not
func (e *Economy) EarnedScore() int {
	return e.lockedScore + e.currentPoints + e.allTimeSpent
}

// AddScore credits spendable points; non-positive amounts are ignored
func (e *Economy) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	e.currentPoints += amount
}

// LockRemainingScore moves every spendable point into the locked pool
func (e *Economy) LockRemainingScore() {
	e.lockedScore += e.currentPoints
	e.currentPoints = 0
}

// TrySpendScore deducts cost only when it is fully covered
func (e *Economy) TrySpendScore(cost int) bool {
	if cost < 0 || e.currentPoints < cost {
		return false
	}
	e.currentPoints -= cost
	return true
}
