// File: ring/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Locked serializes access to a Buffer for callers that share one across
// goroutines. Padding keeps the lock word off neighbouring cache lines.

package ring

import (
	"sync"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Locked[any])(nil)

// Locked guards a Buffer with a mutex.
type Locked[T any] struct {
	_   cpu.CacheLinePad
	mu  sync.Mutex
	buf *Buffer[T]
	_   cpu.CacheLinePad
}

// NewLocked wraps buf. The caller must stop using buf directly.
func NewLocked[T any](buf *Buffer[T]) *Locked[T] {
	return &Locked[T]{buf: buf}
}

// Do runs fn with the lock held. Use it for multi-step sequences and
// iteration; fn must not retain the buffer. Single calls have direct
// passthroughs below.
func (l *Locked[T]) Do(fn func(b *Buffer[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.buf)
}

// View runs fn with the lock held, for reads that cannot fail.
func (l *Locked[T]) View(fn func(b *Buffer[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.buf)
}

func (l *Locked[T]) AddFirst(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.AddFirst(v)
}

func (l *Locked[T]) AddLast(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.AddLast(v)
}

func (l *Locked[T]) RemoveFirst() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.RemoveFirst()
}

func (l *Locked[T]) RemoveLast() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.RemoveLast()
}

func (l *Locked[T]) Get(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Get(i)
}

func (l *Locked[T]) Set(i int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Set(i, v)
}

func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Len()
}

func (l *Locked[T]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Cap()
}

func (l *Locked[T]) SetCapacity(n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.SetCapacity(n)
}

func (l *Locked[T]) ToSlice() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.ToSlice()
}

func (l *Locked[T]) Reset() {
	l.mu.Lock()
	l.buf.Reset()
	l.mu.Unlock()
}

func (l *Locked[T]) First() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.First()
}

func (l *Locked[T]) Last() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Last()
}

func (l *Locked[T]) ToQueue() *queue.Queue {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.ToQueue()
}

func (l *Locked[T]) Growable() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Growable()
}

func (l *Locked[T]) SetGrowable(on bool) {
	l.mu.Lock()
	l.buf.SetGrowable(on)
	l.mu.Unlock()
}

func (l *Locked[T]) Overwriting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Overwriting()
}

func (l *Locked[T]) SetOverwriting(on bool) {
	l.mu.Lock()
	l.buf.SetOverwriting(on)
	l.mu.Unlock()
}

func (l *Locked[T]) MaxCapacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.MaxCapacity()
}

func (l *Locked[T]) SetMaxCapacity(n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.SetMaxCapacity(n)
}

func (l *Locked[T]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Stats()
}
