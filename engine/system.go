package engine

// System is a tick participant
// Systems that also implement event.Handler are registered with the router
type System interface {
	// Init resets internal state; called at registration and on restart
	Init()

	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders execution; Priority / PhaseWidth selects the phase
	Priority() int

	// Update runs once per tick
	Update()
}

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  &w.Resource,
		Component: w.Components,
	}
}
