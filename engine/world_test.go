package engine

import (
	"testing"

	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/physics"
)

type stubSystem struct {
	name     string
	priority int
	log      *[]string
	inits    int
}

func (s *stubSystem) Init()         { s.inits++ }
func (s *stubSystem) Name() string  { return s.name }
func (s *stubSystem) Priority() int { return s.priority }
func (s *stubSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestEntityIDsNeverReused(t *testing.T) {
	w := NewTestWorld()
	a := w.CreateEntity()
	w.DestroyEntity(a)
	b := w.CreateEntity()
	if a == b {
		t.Errorf("id %d reused", a)
	}
}

func TestDestroyEntityClearsStoresAndBody(t *testing.T) {
	w := NewTestWorld()
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{})
	w.Components.Enemy.Set(e, component.EnemyComponent{})
	w.Resource.Physics.Set(e, physics.Body{Active: true})

	w.DestroyEntity(e)
	if w.Alive(e) || w.Components.Enemy.Has(e) {
		t.Error("components survived DestroyEntity")
	}
	if _, ok := w.Resource.Physics.Get(e); ok {
		t.Error("physics body survived DestroyEntity")
	}
}

func TestAddSystemSortsStable(t *testing.T) {
	w := NewTestWorld()
	var log []string
	w.AddSystem(&stubSystem{name: "c", priority: 300, log: &log})
	w.AddSystem(&stubSystem{name: "a1", priority: 100, log: &log})
	w.AddSystem(&stubSystem{name: "b", priority: 200, log: &log})
	w.AddSystem(&stubSystem{name: "a2", priority: 100, log: &log})

	var names []string
	for _, s := range w.Systems() {
		names = append(names, s.Name())
	}
	want := []string{"a1", "a2", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}
