package game

import "github.com/lixenwraith/space-commander/event"

// Listener receives outbound notifications after the tick that produced them
// Listeners run outside the world lock and may call back into the Simulation
type Listener interface {
	OnEvent(ev event.GameEvent)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev event.GameEvent)

func (f ListenerFunc) OnEvent(ev event.GameEvent) { f(ev) }
