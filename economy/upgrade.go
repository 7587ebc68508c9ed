package economy

// Upgrade identifies a purchasable improvement
type Upgrade uint8

const (
	UpgradeMaxEnergy Upgrade = iota
	UpgradeEnergyRecharge
	UpgradeMaxHealth
	UpgradeHealthRecharge
	UpgradeScanSpeed
	UpgradeMissileSpeed

	// One-shot super upgrades
	UpgradeClusterMissile
	UpgradeEnergyVampire
	UpgradeDyingScanners
	UpgradeLargerMissiles

	upgradeCount
)

// UpgradeCount is the number of distinct upgrades
const UpgradeCount = int(upgradeCount)

var upgradeNames = [...]string{
	UpgradeMaxEnergy:      "max-energy",
	UpgradeEnergyRecharge: "energy-recharge",
	UpgradeMaxHealth:      "max-health",
	UpgradeHealthRecharge: "health-recharge",
	UpgradeScanSpeed:      "scan-speed",
	UpgradeMissileSpeed:   "missile-speed",
	UpgradeClusterMissile: "cluster-missile",
	UpgradeEnergyVampire:  "energy-vampire",
	UpgradeDyingScanners:  "dying-scanners",
	UpgradeLargerMissiles: "larger-missiles",
}

func (u Upgrade) String() string {
	if int(u) < len(upgradeNames) {
		return upgradeNames[u]
	}
	return "unknown"
}

// IsSuper reports whether u is a one-shot flag upgrade
func (u Upgrade) IsSuper() bool {
	return u >= UpgradeClusterMissile && u < upgradeCount
}

// ParseUpgrade resolves a name produced by String
func ParseUpgrade(name string) (Upgrade, bool) {
	for i, n := range upgradeNames {
		if n == name {
			return Upgrade(i), true
		}
	}
	return 0, false
}

// Super is a one-shot upgrade; Owned never reverts within a run
type Super struct {
	Cost  int
	Owned bool
}
