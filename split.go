package oneshot

// Pair constructs a new cell and returns its two halves: a [Sender] for the
// producing goroutine and a [Receiver] for the consuming one. The halves
// share the cell, so each may be handed to a different goroutine.
//
// The split exists to document roles at API boundaries: a function that
// accepts a *Receiver[T] plainly cannot send. It does not add enforcement
// beyond the cell's own protocol — Go has no way to consume a handle on
// use — so misusing a half panics exactly as the underlying [Chan] does.
func Pair[T any]() (*Sender[T], *Receiver[T]) {
	c := New[T]()
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// A Sender is the producing half of a cell created by [Pair].
// It must not be copied.
type Sender[T any] struct {
	c *Chan[T]
}

// Send stores v in the shared cell. It has the contract of [Chan.Send]:
// call it exactly once.
func (s *Sender[T]) Send(v T) { s.c.Send(v) }

// A Receiver is the consuming half of a cell created by [Pair].
// It must not be copied.
type Receiver[T any] struct {
	c *Chan[T]
}

// IsReady reports whether a value is available, per [Chan.IsReady].
func (r *Receiver[T]) IsReady() bool { return r.c.IsReady() }

// Receive claims and returns the value, per [Chan.Receive]: it panics if no
// value is available.
func (r *Receiver[T]) Receive() T { return r.c.Receive() }

// Drain recovers an unreceived value at end of life, per [Chan.Drain].
// It requires the same exclusivity: no concurrent use of either half.
func (r *Receiver[T]) Drain() (T, bool) { return r.c.Drain() }
