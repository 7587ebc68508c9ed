package engine

import (
	"time"

	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/difficulty"
	"github.com/lixenwraith/space-commander/economy"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/physics"
	"github.com/lixenwraith/space-commander/status"
)

// Resource holds the world's singletons
// Economy and Director are replaced in place on restart so cached pointers stay valid
type Resource struct {
	Time       *TimeResource
	Tuning     *config.Tuning
	Economy    *economy.Economy
	Director   *difficulty.Director
	Game       *GameStateResource
	Warning    *WarningResource
	Events     *event.EventQueue
	Physics    *physics.Oracle
	Random     RandomSource
	Status     *status.Registry
	PlayerBody core.Entity
}

// NewResource builds fresh singletons for a run with tuning t
func NewResource(t config.Tuning, rng RandomSource) Resource {
	tuning := t
	return Resource{
		Time:     &TimeResource{},
		Tuning:   &tuning,
		Economy:  economy.New(t),
		Director: difficulty.NewDirector(difficulty.NewState(t.Difficulty)),
		Game:     &GameStateResource{},
		Warning:  &WarningResource{},
		Events:   event.NewEventQueue(),
		Physics:  physics.NewOracle(),
		Random:   rng,
		Status:   status.NewRegistry(),
	}
}

// TimeResource is simulated time, advanced only by ticks
type TimeResource struct {
	// Elapsed is total simulated time since the run started
	Elapsed time.Duration

	// DeltaTime is the step of the current tick
	DeltaTime time.Duration

	// FrameNumber counts ticks since the run started
	FrameNumber int64
}

// Advance moves time forward by one tick
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// GameStateResource is the coarse game state; only Playing runs ticks
type GameStateResource struct {
	State core.GameState
}

// WarningResource holds the remaining lit time of each border warning
type WarningResource struct {
	Remaining [core.SideCount]time.Duration
}

// Lit reports whether the warning on side is showing
func (w *WarningResource) Lit(side core.Side) bool {
	return w.Remaining[side] > 0
}
