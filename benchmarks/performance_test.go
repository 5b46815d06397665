// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-ring components.

package benchmarks

import (
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/pool"
	"github.com/momentics/hioload-ring/ring"
)

// BenchmarkAddRemoveFixed measures steady-state FIFO traffic without growth.
func BenchmarkAddRemoveFixed(b *testing.B) {
	buf, err := ring.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.AddLast(i); err != nil {
			b.Fatal(err)
		}
		if _, err := buf.RemoveFirst(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOverwrite measures eviction on a permanently full buffer.
func BenchmarkOverwrite(b *testing.B) {
	buf, err := ring.New[int](256, ring.WithOverwriting(true))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.AddLast(i)
	}
}

// BenchmarkGrowable measures amortized growth from zero capacity.
func BenchmarkGrowable(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ := ring.New[int](0, ring.WithGrowable(true))
		for j := 0; j < 4096; j++ {
			_ = buf.AddLast(j)
		}
	}
}

// BenchmarkEapacheQueue is the reference for BenchmarkGrowable.
func BenchmarkEapacheQueue(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := queue.New()
		for j := 0; j < 4096; j++ {
			q.Add(j)
		}
	}
}

// BenchmarkLockedParallel tests contention through the mutex wrapper.
func BenchmarkLockedParallel(b *testing.B) {
	buf, err := ring.New[int](4096, ring.WithOverwriting(true))
	if err != nil {
		b.Fatal(err)
	}
	l := ring.NewLocked(buf)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = l.AddLast(i)
			_, _ = l.RemoveFirst()
			i++
		}
	})
}

// BenchmarkBufferPool measures Get/Put cycles on recycled buffers.
func BenchmarkBufferPool(b *testing.B) {
	bp, err := pool.NewBufferPool[int](ring.Options{Capacity: 64})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := bp.Get()
			_ = buf.AddLast(1)
			bp.Put(buf)
		}
	})
}
