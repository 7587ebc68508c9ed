package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/parameter"
	"github.com/lixenwraith/space-commander/status"
)

// DirectorSystem drives the difficulty director on its variable-rate timer
type DirectorSystem struct {
	engine.SystemBase

	statLevel *atomic.Int64
	statWave  *atomic.Int64
	statSpeed *status.AtomicFloat
}

func NewDirectorSystem(w *engine.World) engine.System {
	s := &DirectorSystem{SystemBase: engine.NewSystemBase(w)}
	reg := s.Resource.Status
	s.statLevel = reg.Ints.Get(status.KeyDifficultyLevel)
	s.statWave = reg.Ints.Get(status.KeyWaveSize)
	s.statSpeed = reg.Floats.Get(status.KeyEnemySpeed)
	return s
}

func (s *DirectorSystem) Init() {
	s.publish()
}

func (s *DirectorSystem) Name() string  { return "director" }
func (s *DirectorSystem) Priority() int { return parameter.PriorityDirector }

func (s *DirectorSystem) Update() {
	d := s.Resource.Director
	fired, doubled := d.Advance(s.Resource.Time.Elapsed, s.Resource.Economy.EarnedScore())
	if fired == 0 {
		return
	}

	st := d.State
	if doubled {
		log.Printf("director: milestone %d reached, wave size %d", st.Milestone, st.WaveSize)
	}
	s.World.PushEvent(event.EventDifficultyRaised, &event.DifficultyPayload{
		Level:     st.Level,
		WaveSize:  st.WaveSize,
		Speed:     st.EnemySpeed,
		Interval:  st.WaveInterval,
		Milestone: doubled,
	})
	s.publish()
}

func (s *DirectorSystem) publish() {
	st := s.Resource.Director.State
	s.statLevel.Store(int64(st.Level))
	s.statWave.Store(int64(st.WaveSize))
	s.statSpeed.Set(st.EnemySpeed)
}
