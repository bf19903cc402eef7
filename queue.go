package oneshot

import (
	"context"
	"sync"

	"github.com/creachadair/mds/mlink"
)

// A Queue is an unbounded FIFO channel between any number of senders and
// receivers. It is the conventional alternative to [Chan] for callers who
// want multiple messages and are willing to pay for a lock: every operation
// briefly serializes on one mutex, and Receive blocks while the queue is
// empty. A zero Queue is ready for use, but must not be copied after its
// first use.
//
// Unlike [Chan], a Queue has no fallible operations: Send always accepts a
// value, and Receive simply waits until one exists (or its context ends).
type Queue[T any] struct {
	mu    sync.Mutex
	vals  mlink.Queue[T]
	ready chan struct{} // signal channel for Receive, created lazily
}

// NewQueue constructs a new empty queue.
func NewQueue[T any]() *Queue[T] { return new(Queue[T]) }

// Send appends v to the queue and wakes any goroutines blocked in Receive.
// Send never blocks and never fails.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.vals.Add(v)
	if q.ready != nil {
		close(q.ready)
		q.ready = nil
	}
}

// Receive removes and returns the frontmost value, blocking until a value is
// available or ctx ends. If ctx ends first, Receive returns a zero value and
// the context's error.
func (q *Queue[T]) Receive(ctx context.Context) (T, error) {
	for {
		q.mu.Lock()
		if v, ok := q.vals.Pop(); ok {
			q.mu.Unlock()
			return v, nil
		}
		if q.ready == nil {
			q.ready = make(chan struct{})
		}
		ready := q.ready
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-ready:
			// A send arrived; go back and race for it. Another receiver may
			// get there first, in which case we wait again.
		}
	}
}

// TryReceive removes and returns the frontmost value without blocking,
// reporting whether one was available.
func (q *Queue[T]) TryReceive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.vals.Pop()
}

// Len reports the number of values currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.vals.Len()
}
