package parameter

import "time"

// Enemy and wave baseline
const (
	EnemySpeed  = 50.0
	EnemyRadius = 10.0
	GhostRadius = 10.0

	WaveSize     = 1
	WaveInterval = 10 * time.Second
)

// Difficulty growth
const (
	DifficultySpeedStep = 0.5

	// DifficultyIntervalStep shrinks the wave interval on an ordinary growth tick
	DifficultyIntervalStep = 100 * time.Millisecond

	// DifficultyMilestoneIntervalStep shrinks the wave interval when wave size doubles
	DifficultyMilestoneIntervalStep = 2 * time.Second

	DifficultyMinWaveInterval = 3 * time.Second

	// DifficultyMilestoneScore is the earned score between wave-size doublings
	DifficultyMilestoneScore = 500
)

// Play field
const (
	// FieldHalfExtent is half the side of the square play field
	FieldHalfExtent = 540.0

	// SpawnMargin places spawns just outside the visible field
	SpawnMargin = 60.0

	// SpawnWarningDuration is how long a side warning stays lit after a spawn
	SpawnWarningDuration = 500 * time.Millisecond
)
