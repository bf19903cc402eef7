package oneshot

import (
	"context"
	"sync"
)

// A Latch is a set-once value that any number of goroutines can wait on.
// It is the parking counterpart of [Chan]: where a Chan receiver must poll
// IsReady, latch waiters block until the value arrives, and every waiter
// observes the same value. A zero Latch is ready for use, but must not be
// copied after its first use.
//
// A Latch accepts exactly one Set; a second Set panics. Unlike [Chan],
// reading does not consume the value.
type Latch[T any] struct {
	mu   sync.Mutex
	v    T
	done chan struct{} // created lazily, closed by Set

	// The done channel is lazily initialized by the first waiter or by Set,
	// whichever comes first.
}

// NewLatch constructs a new unset Latch.
func NewLatch[T any]() *Latch[T] { return new(Latch[T]) }

// Set publishes v to all current and future waiters. Set never blocks.
// It panics if the latch was already set.
func (l *Latch[T]) Set(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.isSetLocked() {
		panic("oneshot: multiple sets on a latch")
	}
	l.v = v
	if l.done == nil {
		l.done = make(chan struct{})
	}
	close(l.done)
}

// IsSet reports whether the latch has been set. It never blocks.
func (l *Latch[T]) IsSet() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isSetLocked()
}

func (l *Latch[T]) isSetLocked() bool {
	if l.done == nil {
		return false
	}
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Ready returns a channel that is closed once the latch is set. After the
// channel closes, Wait returns immediately.
func (l *Latch[T]) Ready() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == nil {
		l.done = make(chan struct{})
	}
	return l.done
}

// Wait blocks until the latch is set or ctx ends, and returns the latch
// value. The error is nil if the value was delivered, or the context's error
// if ctx ended first.
func (l *Latch[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-l.Ready():
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.v, nil
	}
}
