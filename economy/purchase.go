package economy

// Owns reports whether a super upgrade has been bought
func (e *Economy) Owns(u Upgrade) bool {
	return u.IsSuper() && e.supers[u].Owned
}

// Cost returns the score price of u
func (e *Economy) Cost(u Upgrade) int {
	switch u {
	case UpgradeMaxEnergy:
		return e.MaxEnergy.Cost
	case UpgradeMaxHealth:
		return e.MaxHealth.Cost
	case UpgradeEnergyRecharge:
		return e.EnergyRecharge.Cost
	case UpgradeHealthRecharge:
		return e.HealthRecharge.Cost
	case UpgradeScanSpeed:
		return e.ScanSpeed.Cost
	case UpgradeMissileSpeed:
		return e.MissileSpeed.Cost
	}
	if u.IsSuper() {
		return e.supers[u].Cost
	}
	return 0
}

// Maxed reports whether u can no longer be purchased
func (e *Economy) Maxed(u Upgrade) bool {
	switch u {
	case UpgradeMaxEnergy:
		return e.MaxEnergy.Maxed()
	case UpgradeMaxHealth:
		return e.MaxHealth.Maxed()
	case UpgradeEnergyRecharge:
		return e.EnergyRecharge.Maxed()
	case UpgradeHealthRecharge:
		return e.HealthRecharge.Maxed()
	case UpgradeScanSpeed:
		return e.ScanSpeed.Maxed()
	case UpgradeMissileSpeed:
		return e.MissileSpeed.Maxed()
	}
	if u.IsSuper() {
		return e.supers[u].Owned
	}
	return true
}

// RechargeMaxed reports whether energy recharge speed is at its floor
func (e *Economy) RechargeMaxed() bool { return e.EnergyRecharge.Maxed() }

// ScanSpeedMaxed reports whether scan speed is at its cap
func (e *Economy) ScanSpeedMaxed() bool { return e.ScanSpeed.Maxed() }

// MissileSpeedMaxed reports whether missile speed is at its cap
func (e *Economy) MissileSpeedMaxed() bool { return e.MissileSpeed.Maxed() }

// Purchase buys u if it is not maxed and the score covers it
// State is untouched on failure
func (e *Economy) Purchase(u Upgrade) bool {
	if e.Maxed(u) {
		return false
	}
	cost := e.Cost(u)
	if !e.TrySpendScore(cost) {
		return false
	}

	switch u {
	case UpgradeMaxEnergy:
		e.MaxEnergy.apply()
	case UpgradeMaxHealth:
		e.MaxHealth.apply()
	case UpgradeEnergyRecharge:
		e.EnergyRecharge.apply()
	case UpgradeHealthRecharge:
		e.HealthRecharge.apply()
	case UpgradeScanSpeed:
		e.ScanSpeed.apply()
	case UpgradeMissileSpeed:
		e.MissileSpeed.apply()
	default:
		e.supers[u].Owned = true
	}
	e.allTimeSpent += cost
	return true
}
