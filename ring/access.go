// File: ring/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Indexed access and snapshot conversion.

package ring

import (
	"github.com/eapache/queue"
	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// Get returns the element at logical index i, 0 being the first.
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, errors.Wrapf(api.ErrIndexOutOfRange, "get %d, size %d", i, b.size)
	}
	return b.storage[b.physical(i)], nil
}

// Set replaces the element at logical index i. Index size is rejected like
// any other out-of-range index; use AddLast to append.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.size {
		return errors.Wrapf(api.ErrIndexOutOfRange, "set %d, size %d", i, b.size)
	}
	b.storage[b.physical(i)] = v
	return nil
}

// ToSlice returns a fresh slice of the elements in logical order.
func (b *Buffer[T]) ToSlice() []T {
	out := make([]T, b.size)
	b.copyTo(out)
	return out
}

// ToQueue copies the elements, first to last, into a new FIFO queue.
func (b *Buffer[T]) ToQueue() *queue.Queue {
	q := queue.New()
	for i := 0; i < b.size; i++ {
		q.Add(b.storage[b.physical(i)])
	}
	return q
}
