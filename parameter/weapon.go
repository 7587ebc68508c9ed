package parameter

import "time"

// Missile
const (
	MissileEnergyCost = 1
	MissileSpeed      = 200.0
	MissileRadius     = 2.0

	// MissileTargetTolerance is the per-axis distance at which a missile counts as arrived
	MissileTargetTolerance = 5.0

	MissileExplosionRadius      = 8.0
	MissileLargeExplosionRadius = 12.0

	// MissileExplosionLinger is how long an exploded missile stays before despawn
	MissileExplosionLinger = 200 * time.Millisecond

	// Cluster sub-missiles land this far from the lead target on each axis
	MissileClusterRadius      = 20.0
	MissileLargeClusterRadius = 40.0
	MissileClusterCount       = 4

	// VampireRefund is the energy returned by a lead missile that scored a kill
	VampireRefund = 1
)

// Scan
const (
	ScanEnergyCost    = 1
	ScanSpeed         = 50.0
	ScanInitialRadius = 20.0
	ScanMaxRadius     = 1000.0

	DyingScanMaxRadius = 50.0
	DyingScanLimit     = 5
)

// Auto-scan
const (
	AutoScanInterval    = 5 * time.Second
	AutoScanMinInterval = 2 * time.Second
	AutoScanMaxInterval = 30 * time.Second
)

// Reveal bounds; a scanned enemy stays visible this long
const (
	RevealDuration    = 500 * time.Millisecond
	RevealDurationMin = 500 * time.Millisecond
	RevealDurationMax = 1000 * time.Millisecond
)

// Shield
const (
	ShieldEnergyCost = 1
	ShieldCostRate   = 1 * time.Second
	ShieldRadius     = 60.0
)
