package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-commander/event"
	"github.com/lixenwraith/space-commander/status"
)

// phaseRecorder emits an event during Update and records when it is handled
type phaseRecorder struct {
	stubSystem
	world  *World
	emit   event.EventType
	listen []event.EventType
}

func (p *phaseRecorder) Update() {
	p.stubSystem.Update()
	if p.emit != 0 {
		p.world.PushEvent(p.emit, nil)
	}
}

func (p *phaseRecorder) EventTypes() []event.EventType { return p.listen }

func (p *phaseRecorder) HandleEvent(ev event.GameEvent) {
	*p.log = append(*p.log, p.name+"<"+ev.Type.String())
}

func TestTickDrainsAtPhaseBoundaries(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w)
	var log []string

	producer := &phaseRecorder{stubSystem: stubSystem{name: "pipeline", priority: 110, log: &log}, world: w, emit: event.EventEnemyKilled}
	sibling := &phaseRecorder{stubSystem: stubSystem{name: "collision", priority: 190, log: &log}, world: w}
	consumer := &phaseRecorder{stubSystem: stubSystem{name: "enemy", priority: 210, log: &log}, world: w, listen: []event.EventType{event.EventEnemyKilled}}
	s.Register(producer)
	s.Register(sibling)
	s.Register(consumer)

	s.Tick(16 * time.Millisecond)

	want := []string{"pipeline", "collision", "enemy<enemy-killed", "enemy"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestTickLeavesQueueEmpty(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w)
	var log []string
	late := &phaseRecorder{stubSystem: stubSystem{name: "counter", priority: 490, log: &log}, world: w, emit: event.EventScoreChanged}
	s.Register(late)

	var observed int
	s.Router().Observe(func(event.GameEvent) { observed++ })

	s.Tick(16 * time.Millisecond)
	if w.Resource.Events.Len() != 0 {
		t.Errorf("queue length after tick = %d, want 0", w.Resource.Events.Len())
	}
	if observed != 1 {
		t.Errorf("observer saw %d events, want 1", observed)
	}
}

func TestTickDropsInputQueuedBeforeRestart(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w)
	var log []string
	input := &phaseRecorder{
		stubSystem: stubSystem{name: "input", priority: 110, log: &log},
		world:      w,
		listen:     []event.EventType{event.EventFireMissile, event.EventRestart, event.EventScanRequest},
	}
	s.Register(input)

	w.PushEvent(event.EventFireMissile, nil)
	w.PushEvent(event.EventRestart, nil)
	w.PushEvent(event.EventScanRequest, nil)
	s.Tick(10 * time.Millisecond)

	want := []string{
		"input<" + event.EventRestart.String(),
		"input<" + event.EventScanRequest.String(),
		"input",
	}
	if len(log) != len(want) {
		t.Fatalf("log %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log %v, want %v", log, want)
		}
	}
	if n := w.Resource.Status.Ints.Get(status.KeyEngineTicks).Load(); n != 1 {
		t.Errorf("%s = %d, want 1", status.KeyEngineTicks, n)
	}
}

func TestTickAdvancesTimeAndClamps(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w)
	s.Tick(10 * time.Millisecond)
	s.Tick(time.Second)

	tr := w.Resource.Time
	if tr.FrameNumber != 2 {
		t.Errorf("FrameNumber = %d, want 2", tr.FrameNumber)
	}
	if tr.DeltaTime != 100*time.Millisecond {
		t.Errorf("DeltaTime = %s, want clamp to 100ms", tr.DeltaTime)
	}
	if tr.Elapsed != 110*time.Millisecond {
		t.Errorf("Elapsed = %s, want 110ms", tr.Elapsed)
	}

	s.Tick(0)
	if tr.FrameNumber != 2 {
		t.Error("zero-length tick advanced the frame")
	}
}

func TestRegisterCallsInit(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w)
	var log []string
	sys := &stubSystem{name: "x", priority: 100, log: &log}
	s.Register(sys)
	s.InitAll()
	if sys.inits != 2 {
		t.Errorf("inits = %d, want 2", sys.inits)
	}
}
