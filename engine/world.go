package engine

import (
	"sync"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/event"
)

// World is the entity arena: typed component stores, singletons and ordered systems
// Entity ids are never reused, so a stale reference fails lookup instead of aliasing
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	stores     []remover

	Resource Resource

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world around the given singletons
func NewWorld(res Resource) *World {
	w := &World{
		nextEntityID: 1,
		Resource:     res,
		systems:      make([]System, 0),
	}
	w.Components, w.stores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes every component of e and its physics body
func (w *World) DestroyEntity(e core.Entity) {
	if !e.Valid() {
		return
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	if w.Resource.Physics != nil {
		w.Resource.Physics.Remove(e)
	}
}

// Alive reports whether e still has a position in the world
func (w *World) Alive(e core.Entity) bool {
	return e.Valid() && w.Components.Kinetic.Has(e)
}

// AddSystem adds a system and keeps the list sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, stable and small N
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resource.Events == nil {
		return
	}
	var frame int64
	if w.Resource.Time != nil {
		frame = w.Resource.Time.FrameNumber
	}
	w.Resource.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   frame,
	})
}
