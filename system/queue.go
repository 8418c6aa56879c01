package system

import "sync"

// EventQueue is a multi-producer, single-consumer buffer of pending
// events.
//
// Thread-Safety:
//   - Post: short critical section, multiple producers OK
//   - Take: swaps the backing slice, so dispatch of taken events never
//     holds the lock and never contends with concurrent posters
//
// FIFO order is kept per producer. Everything posted before a Take is
// returned by that Take; posts racing the swap land in the next batch.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Post appends an event. O(1) amortized, never blocks on dispatch
func (q *EventQueue) Post(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Take removes and returns all pending events in FIFO order,
// installing a fresh buffer for concurrent posters. Single-consumer
// design (event loop).
func (q *EventQueue) Take() []Event {
	q.mu.Lock()
	taken := q.events
	q.events = nil
	q.mu.Unlock()
	return taken
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
