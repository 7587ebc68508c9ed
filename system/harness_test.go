package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/config"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/vmath"
)

const testDT = 10 * time.Millisecond

// harness wires a full world with every system and records outbound events
type harness struct {
	t     *testing.T
	world *engine.World
	sched *engine.Scheduler
	rng   *engine.SequenceRandom
	seen  []event.GameEvent
}

func newHarness(t *testing.T) *harness {
	return newHarnessWith(t, config.Default())
}

func newHarnessWith(t *testing.T, tn config.Tuning) *harness {
	t.Helper()
	rng := &engine.SequenceRandom{}
	w := engine.NewWorld(engine.NewResource(tn, rng))
	s := engine.NewScheduler(w)
	h := &harness{t: t, world: w, sched: s, rng: rng}
	RegisterAll(w, s)
	s.Router().Observe(func(ev event.GameEvent) { h.seen = append(h.seen, ev) })
	return h
}

// step runs n ticks of testDT
func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.sched.Tick(testDT)
	}
}

// stepFor runs ticks covering d
func (h *harness) stepFor(d time.Duration) {
	h.step(int(d / testDT))
}

func (h *harness) push(t event.EventType, payload any) {
	h.world.PushEvent(t, payload)
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, ev := range h.seen {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// system returns the registered system with the given name
func (h *harness) system(name string) engine.System {
	h.t.Helper()
	for _, s := range h.world.Systems() {
		if s.Name() == name {
			return s
		}
	}
	h.t.Fatalf("system %q not registered", name)
	return nil
}

// placeEnemy spawns a stationary enemy at pos with its ghost
func (h *harness) placeEnemy(pos vmath.Vec2) (core.Entity, core.Entity) {
	e, g := spawnEnemy(h.world, pos, pos, 0, core.SideLeft)
	return e, g
}

func (h *harness) pos(e core.Entity) vmath.Vec2 {
	k, _ := h.world.Components.Kinetic.Get(e)
	return k.Pos
}

func (h *harness) visible(e core.Entity) bool {
	v, _ := h.world.Components.Visibility.Get(e)
	return v.Visible
}

func (h *harness) missiles() []component.MissileComponent {
	var out []component.MissileComponent
	for _, e := range h.world.Components.Missile.All() {
		m, _ := h.world.Components.Missile.Get(e)
		out = append(out, m)
	}
	return out
}
