package oneshot_test

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"code.hybscloud.com/iox"
	"github.com/creachadair/oneshot"
)

func ExampleChan() {
	c := oneshot.New[string]()

	go func() { c.Send("hello") }()

	// The cell never blocks. A consumer that wants to wait polls IsReady,
	// parking between probes however it sees fit.
	backoff := iox.Backoff{}
	for !c.IsReady() {
		backoff.Wait()
	}

	fmt.Println(c.Receive())
	fmt.Println(c.IsReady())
	// Output:
	// hello
	// false
}

func ExamplePair() {
	// Pair splits a cell into its two roles, so each side of the exchange
	// can be handed only the operations it is meant to use.
	s, r := oneshot.Pair[int]()

	var wg sync.WaitGroup
	wg.Go(func() { s.Send(42) })

	for !r.IsReady() {
		runtime.Gosched()
	}
	fmt.Println(r.Receive())

	wg.Wait()
	// Output:
	// 42
}

func ExampleLatch() {
	l := oneshot.NewLatch[string]()

	// Any number of goroutines can park on a latch; all of them observe the
	// value from the single Set.
	var wg sync.WaitGroup
	for range 3 {
		wg.Go(func() {
			v, _ := l.Wait(context.Background())
			fmt.Println(v)
		})
	}

	l.Set("ready")
	wg.Wait()
	// Output:
	// ready
	// ready
	// ready
}

func ExampleQueue() {
	q := oneshot.NewQueue[int]()

	// A queue carries any number of values, first in first out.
	q.Send(1)
	q.Send(2)
	q.Send(3)

	ctx := context.Background()
	for q.Len() > 0 {
		v, _ := q.Receive(ctx)
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}
