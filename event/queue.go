package event

import (
	"sync"

	"github.com/lixenwraith/contagion/parameter"
)

// EventQueue is a bounded FIFO between the simulation and the front-end
// Any goroutine may Push; Consume is meant for a single reader draining once per frame.
// When full, the oldest unread event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    []GameEvent
	start   int // Index of the oldest unread event
	size    int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{ring: make([]GameEvent, parameter.EventQueueSize)}
}

// Push appends ev, evicting the oldest event when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	capacity := len(eq.ring)
	if eq.size == capacity {
		eq.ring[eq.start] = ev
		eq.start = (eq.start + 1) % capacity
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.size)%capacity] = ev
	eq.size++
}

// Consume returns every pending event oldest first, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.size == 0 {
		return nil
	}

	capacity := len(eq.ring)
	out := make([]GameEvent, eq.size)
	for i := range out {
		idx := (eq.start + i) % capacity
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // Release payload
	}
	eq.start = 0
	eq.size = 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.size
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
