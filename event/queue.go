package event

import (
	"sync"

	"github.com/lixenwraith/space-commander/parameter"
)

// EventQueue is a bounded FIFO ring buffer for game events
// Thread-Safety:
//   - Push: any goroutine (input collaborator, systems)
//   - Consume: single consumer (scheduler)
//
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
// Events pushed while handlers run land in the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}

// Discard drops every pending event without dispatch
func (eq *EventQueue) Discard() {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	for i := eq.head; i < eq.tail; i++ {
		eq.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
}
