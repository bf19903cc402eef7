// Package oneshot implements single-use message cells for handing one value
// from one goroutine to another.
//
// The core type is [Chan], a lock-free cell that carries exactly one value
// from exactly one sender to exactly one receiver. None of its operations
// block, spin, or allocate; misuse of the protocol (a second send, a receive
// before a value exists) is a programming error and panics.
//
// For callers who prefer to park rather than poll, [Latch] provides a
// blocking set-once variant, and [Queue] provides an unbounded FIFO channel
// with a blocking receive.
package oneshot

import (
	"code.hybscloud.com/atomix"
)

// The phases of a cell's life, in order. A cell moves through them at most
// once: empty → writing → ready → reading. The zero value is empty, so a
// zero Chan is a fresh cell.
const (
	stateEmpty   int32 = iota // no send has begun
	stateWriting              // a sender owns the slot and is writing it
	stateReady                // a value is stored and not yet claimed
	stateReading              // a receiver has claimed the value
)

// A Chan is a single-use cell that transfers one value of type T from one
// goroutine to another without locks or blocking. A zero Chan is ready for
// use, but must not be copied after its first use.
//
// A Chan accepts exactly one Send and exactly one Receive over its whole
// life. Send may be called from one goroutine while Receive and IsReady are
// called from another; the cell serializes them without locks. Calling Send
// twice, or Receive before a value is available, panics: these are protocol
// violations by the caller, not runtime conditions, and the cell is not
// reusable after either.
//
// The value slot itself is not synchronized. Access to it is serialized
// entirely by the state tag: a goroutine may touch the slot only immediately
// after winning the tag transition that grants it ownership (Send after
// claiming the empty cell, Receive after claiming the ready one). IsReady
// deliberately provides no such ownership and no ordering guarantee.
type Chan[T any] struct {
	state atomix.Int32
	slot  T
}

// New constructs a new empty cell. It is equivalent to new(Chan[T]); it
// exists so call sites can name the payload type.
func New[T any]() *Chan[T] { return new(Chan[T]) }

// Send stores v in the cell and makes it available to Receive. Send never
// blocks. It panics if a send has already begun on c, whether from this
// goroutine or another; the earlier send's value is unaffected.
//
// After Send returns, a goroutine that completes a Receive observes v with
// no data race: the final state store is a release write, paired with the
// acquire claim inside Receive.
func (c *Chan[T]) Send(v T) {
	// Relaxed suffices for the claim: the tag has a single modification
	// order, so at most one CAS from empty can ever succeed, and only the
	// winner touches the slot. Publication happens at the release store
	// below, not here.
	if !c.state.CompareAndSwapRelaxed(stateEmpty, stateWriting) {
		panic("oneshot: multiple sends on a one-shot cell")
	}
	c.slot = v
	c.state.StoreRelease(stateReady)
}

// IsReady reports whether a value is currently stored and unclaimed. It
// never blocks and never panics.
//
// IsReady is a snapshot only: a true result is license to call Receive, not
// to touch the cell's contents by any other means. The read is unordered;
// the synchronization that makes the value safe to use happens inside
// Receive.
func (c *Chan[T]) IsReady() bool {
	return c.state.LoadRelaxed() == stateReady
}

// Receive claims the stored value and returns it, transferring ownership to
// the caller. Receive never blocks: it panics if no value is available,
// whether because no send has completed yet or because the value was already
// received. Callers that cannot ensure a completed send must gate Receive on
// IsReady.
//
// The claim is an acquire operation paired with the release store in Send,
// so the returned value is observed fully written regardless of which
// goroutines ran the two halves.
func (c *Chan[T]) Receive() T {
	if !c.state.CompareAndSwapAcqRel(stateReady, stateReading) {
		panic("oneshot: no value available to receive")
	}
	// The CAS gave this goroutine sole ownership of the slot. Move the
	// value out and drop the cell's reference to it.
	var zero T
	v := c.slot
	c.slot = zero
	return v
}

// Drain recovers a value that was sent but never received, reporting whether
// there was one. If it reports true, ownership of the value passes to the
// caller, exactly as if Receive had returned it; a cell holds a value to
// drain at most once. If the cell is untouched, mid-send, or already
// received from, Drain reports false.
//
// Drain is for end-of-life cleanup and is NOT safe for concurrent use: the
// caller must be the sole remaining holder of the cell, after any Send and
// Receive calls have returned. At that point nothing else can observe the
// cell, which is the justification for the unordered accesses here.
func (c *Chan[T]) Drain() (T, bool) {
	var zero T
	if c.state.LoadRelaxed() != stateReady {
		return zero, false
	}
	c.state.Store(stateReading)
	v := c.slot
	c.slot = zero
	return v, true
}
