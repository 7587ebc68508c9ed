package event

// Handler processes routed events
// Systems implement this to receive events during phase drains
type Handler interface {
	// HandleEvent processes a single event synchronously
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Observer receives every outbound event after its handlers ran
type Observer func(ev GameEvent)

// Router dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch, called only by the scheduler
//   - Handlers for a type run in registration order
//   - Outbound events are additionally passed to observers
type Router struct {
	handlers  [EventTypeCount][]Handler
	observers []Observer
	queue     *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{queue: queue}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		if t < 0 || int(t) >= EventTypeCount {
			continue
		}
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Observe adds an outbound observer
func (r *Router) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

// DispatchAll consumes every pending event and routes it in FIFO order
// Events emitted by handlers are left queued for the next drain
// Returns the number of events dispatched
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.dispatch(ev)
	}
	return len(events)
}

// DispatchReset consumes pending events; a reset event supersedes everything queued before it
// Only the last reset and the events after it are routed, in FIFO order
// Returns the number of events dropped
func (r *Router) DispatchReset(reset EventType) int {
	events := r.queue.Consume()
	from := 0
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == reset {
			from = i
			break
		}
	}
	for _, ev := range events[from:] {
		r.dispatch(ev)
	}
	return from
}

// Drain dispatches until the queue is empty or maxPasses is reached
// Returns true when the queue ended empty
func (r *Router) Drain(maxPasses int) bool {
	for i := 0; i < maxPasses; i++ {
		if r.DispatchAll() == 0 {
			return true
		}
	}
	return r.queue.Len() == 0
}

func (r *Router) dispatch(ev GameEvent) {
	if ev.Type >= 0 && int(ev.Type) < EventTypeCount {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	if ev.Type.Outbound() {
		for _, o := range r.observers {
			o(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for t
func (r *Router) HandlerCount(t EventType) int {
	if t < 0 || int(t) >= EventTypeCount {
		return 0
	}
	return len(r.handlers[t])
}
