// File: ring/remove.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// RemoveFirst removes and returns the logical first element.
func (b *Buffer[T]) RemoveFirst() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, errors.Wrap(api.ErrEmptyBuffer, "remove first")
	}
	start, err := b.next(b.start)
	if err != nil {
		return zero, err
	}
	v := b.storage[b.start]
	b.storage[b.start] = zero
	b.start = start
	b.size--
	return v, nil
}

// RemoveLast removes and returns the logical last element.
func (b *Buffer[T]) RemoveLast() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, errors.Wrap(api.ErrEmptyBuffer, "remove last")
	}
	end, err := b.prev(b.end)
	if err != nil {
		return zero, err
	}
	v := b.storage[b.end]
	b.storage[b.end] = zero
	b.end = end
	b.size--
	return v, nil
}

// First returns the logical first element without removing it.
func (b *Buffer[T]) First() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmptyBuffer, "first")
	}
	return b.storage[b.start], nil
}

// Last returns the logical last element without removing it.
func (b *Buffer[T]) Last() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, errors.Wrap(api.ErrEmptyBuffer, "last")
	}
	return b.storage[b.end], nil
}
