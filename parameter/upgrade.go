package parameter

import "time"

// Stat upgrades: cost, step and cap (or floor for intervals)
const (
	UpgradeMaxEnergyCost = 100
	UpgradeMaxEnergyStep = 1
	UpgradeMaxEnergyCap  = 12

	UpgradeEnergyRechargeCost  = 150
	UpgradeEnergyRechargeStep  = 500 * time.Millisecond
	UpgradeEnergyRechargeFloor = 1 * time.Second

	UpgradeMaxHealthCost = 120
	UpgradeMaxHealthStep = 1
	UpgradeMaxHealthCap  = 10

	UpgradeHealthRechargeCost  = 120
	UpgradeHealthRechargeStep  = 2 * time.Second
	UpgradeHealthRechargeFloor = 5 * time.Second

	UpgradeScanSpeedCost = 100
	UpgradeScanSpeedStep = 25.0
	UpgradeScanSpeedCap  = 200.0

	UpgradeMissileSpeedCost = 100
	UpgradeMissileSpeedStep = 50.0
	UpgradeMissileSpeedCap  = 500.0
)

// One-shot super upgrades
const (
	SuperClusterMissileCost = 500
	SuperEnergyVampireCost  = 400
	SuperDyingScannersCost  = 300
	SuperLargerMissilesCost = 350
)
