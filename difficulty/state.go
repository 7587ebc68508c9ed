// Package difficulty scales enemy pressure over a run
package difficulty

import (
	"math"
	"time"

	"github.com/lixenwraith/space-commander/config"
)

// Phase is the director's alternating growth state
type Phase uint8

const (
	// GrowWaveSize grows wave size and speed and shrinks the interval
	GrowWaveSize Phase = iota
	// GrowSpeedAndTighten is a rest tick that halves the effective growth rate
	GrowSpeedAndTighten
)

func (p Phase) String() string {
	if p == GrowWaveSize {
		return "grow-wave-size"
	}
	return "grow-speed-and-tighten"
}

// State holds the current wave parameters
type State struct {
	EnemySpeed      float64
	WaveSize        int
	WaveInterval    time.Duration
	MinWaveInterval time.Duration
	Phase           Phase

	// Milestone is the earned score recorded at the last wave-size doubling
	Milestone int
	Level     int

	// Derived after each tick
	MicroInterval time.Duration
	MicroCount    int

	speedStep             float64
	intervalStep          time.Duration
	milestoneIntervalStep time.Duration
	milestoneScore        int
}

// NewState returns the opening difficulty
func NewState(t config.DifficultyTuning) *State {
	s := &State{
		EnemySpeed:            t.EnemySpeed,
		WaveSize:              t.WaveSize,
		WaveInterval:          t.WaveInterval,
		MinWaveInterval:       t.MinWaveInterval,
		Phase:                 GrowWaveSize,
		speedStep:             t.SpeedStep,
		intervalStep:          t.IntervalStep,
		milestoneIntervalStep: t.MilestoneIntervalStep,
		milestoneScore:        t.MilestoneScore,
	}
	s.derive()
	return s
}

// Tick applies one director firing
// earned is the score compared against the last milestone
// Returns true when the wave size doubled on this tick
func (s *State) Tick(earned int) bool {
	doubled := false

	switch s.Phase {
	case GrowWaveSize:
		if earned-s.Milestone >= s.milestoneScore {
			s.WaveSize *= 2
			s.WaveInterval -= s.milestoneIntervalStep
			s.Milestone = earned
			doubled = true
		} else {
			s.WaveSize++
			s.WaveInterval -= s.intervalStep
		}
		s.EnemySpeed += s.speedStep
		s.WaveInterval = max(s.WaveInterval, s.MinWaveInterval)
		s.Level++
		s.Phase = GrowSpeedAndTighten

	case GrowSpeedAndTighten:
		s.Phase = GrowWaveSize
	}

	s.derive()
	return doubled
}

// derive recomputes the micro-wave cadence
func (s *State) derive() {
	if s.WaveSize <= 0 {
		s.MicroInterval = s.WaveInterval
		s.MicroCount = 0
		return
	}
	s.MicroInterval = s.WaveInterval / time.Duration(s.WaveSize)
	secs := s.MicroInterval.Seconds()
	if secs <= 0 {
		s.MicroCount = s.WaveSize
		return
	}
	s.MicroCount = int(math.Ceil(float64(s.WaveSize) / secs))
}
