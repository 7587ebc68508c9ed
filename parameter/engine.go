package parameter

import "time"

// Timing
const (
	// TickInterval is the real-time frame period of the runner
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single simulated step after a stall
	MaxTickDelta = 100 * time.Millisecond

	// MaxDrainPasses bounds the end-of-tick event drain loop
	MaxDrainPasses = 8
)

// Event queue sizing, power of two for mask indexing
const (
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)

// Phase bands; a system's phase is Priority / PhaseWidth
// The scheduler drains pending events at every phase boundary
const (
	PhaseWidth    = 100
	PhasePipeline = 1
	PhaseEnemy    = 2
	PhaseCleanup  = 3
	PhaseCounters = 4
)

// System execution priorities (lower runs first)
const (
	PriorityRestart = 10 // Handler only; runs ahead of every phase

	PriorityMotion    = 110
	PriorityMissile   = 120
	PriorityScan      = 130
	PriorityShield    = 140
	PriorityCollision = 190 // After every pipeline has moved

	PriorityVisibility = 210
	PrioritySpawner    = 220
	PriorityRecharge   = 230
	PriorityWarning    = 240

	PriorityCleanup = 310
	PriorityScore   = 320 // Handler only

	PriorityDirector = 410
	PriorityCounter  = 490
)
