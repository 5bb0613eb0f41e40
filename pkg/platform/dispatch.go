// Package platform provides the control-flow queue the presenter runs on.
//
// Every presenter entry point and every animation frame executes as a
// callback on one serial queue, so view geometry is only ever mutated from a
// single goroutine and no locks are needed around it.
package platform

import (
	"context"
	"sync"
)

// Dispatcher schedules callbacks onto the UI control-flow queue.
// Dispatch must never run the callback synchronously in the caller.
// It returns false if the callback could not be scheduled.
type Dispatcher interface {
	Dispatch(callback func()) bool
}

// DispatchFunc adapts a host scheduling function to the Dispatcher
// interface, for hosts that already own a UI queue.
type DispatchFunc func(callback func())

// Dispatch schedules callback through f. Returns false if f or callback is nil.
func (f DispatchFunc) Dispatch(callback func()) bool {
	if f == nil || callback == nil {
		return false
	}
	f(callback)
	return true
}

// Queue is a serial FIFO of callbacks executed by the goroutine that calls Run.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	wake    chan struct{}
}

// NewQueue returns an empty, open queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Dispatch appends callback to the queue.
// Returns false if the callback is nil or the queue is closed.
func (q *Queue) Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, callback)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Close stops accepting callbacks. Callbacks already queued still run.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of callbacks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunPending executes queued callbacks, including ones they enqueue, until
// the queue is empty. It returns the number of callbacks run.
func (q *Queue) RunPending() int {
	n := 0
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return n
		}
		next := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		next()
		n++
	}
}

// Run executes callbacks in order until ctx is done or the queue is closed
// and drained.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.RunPending()

		q.mu.Lock()
		done := q.closed && len(q.pending) == 0
		q.mu.Unlock()
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}
