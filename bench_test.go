package oneshot_test

import (
	"context"
	"testing"

	"github.com/creachadair/oneshot"
)

// The benchmarks compare the cost of one complete value transfer through
// each primitive, all on a single goroutine so they measure the operations
// themselves rather than scheduling.

func BenchmarkChan(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		c := oneshot.New[int]()
		c.Send(1)
		_ = c.Receive()
	}
}

func BenchmarkLatch(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := oneshot.NewLatch[int]()
		l.Set(1)
		_, _ = l.Wait(context.Background())
	}
}

func BenchmarkQueue(b *testing.B) {
	b.ReportAllocs()
	ctx := context.Background()
	q := oneshot.NewQueue[int]()
	for b.Loop() {
		q.Send(1)
		_, _ = q.Receive(ctx)
	}
}

func BenchmarkGoChan(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		ch := make(chan int, 1)
		ch <- 1
		<-ch
	}
}
