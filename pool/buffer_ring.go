// Package pool adapts ring.Buffer as api.Ring.
//
// BufferRing[T] is a thin FIFO view over ring.Buffer[T] for pipeline
// stages that only enqueue at the tail and dequeue at the head.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// BufferRing[T] implements api.Ring[T] on top of a ring buffer.
type BufferRing[T any] struct {
	buf *ring.Buffer[T]
}

// NewBufferRing creates a FIFO of the given capacity. The overflow policy
// of the underlying buffer follows opts.
func NewBufferRing[T any](capacity int, opts ...ring.Option) (*BufferRing[T], error) {
	buf, err := ring.New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &BufferRing[T]{buf: buf}, nil
}

// Enqueue appends item; false when the buffer refused it.
func (r *BufferRing[T]) Enqueue(item T) bool {
	return r.buf.AddLast(item) == nil
}

// Dequeue removes the oldest item; ok is false when empty.
func (r *BufferRing[T]) Dequeue() (T, bool) {
	v, err := r.buf.RemoveFirst()
	return v, err == nil
}

func (r *BufferRing[T]) Len() int { return r.buf.Len() }

func (r *BufferRing[T]) Cap() int { return r.buf.Cap() }

// Buffer exposes the underlying deque.
func (r *BufferRing[T]) Buffer() *ring.Buffer[T] { return r.buf }

// Ensure compile-time compliance.
var _ api.Ring[any] = (*BufferRing[any])(nil)
