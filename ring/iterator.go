// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Iterator[any] = (*Iterator[any])(nil)

// Iterator walks a buffer from its first element. The number of steps is
// fixed when the traversal starts; mutating the buffer meanwhile yields
// unspecified values but never reads outside storage.
type Iterator[T any] struct {
	buf       *Buffer[T]
	start     int
	size      int
	pos       int
	processed int
}

// Iterator returns a new cursor positioned before the first element.
func (b *Buffer[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{buf: b}
	it.Reset()
	return it
}

// Reset rewinds to before the current first element of the buffer.
func (it *Iterator[T]) Reset() {
	it.start = it.buf.start
	it.size = it.buf.size
	it.pos = -1
	it.processed = 0
}

// Next advances the cursor and reports whether it rests on an element.
func (it *Iterator[T]) Next() bool {
	if it.processed > it.size {
		return false
	}
	if it.pos == -1 {
		it.pos = it.start
	} else {
		pos, err := it.buf.next(it.pos)
		if err != nil {
			it.processed = it.size + 1
			return false
		}
		if pos >= len(it.buf.storage) {
			pos = 0
		}
		it.pos = pos
	}
	it.processed++
	return it.processed <= it.size
}

// Current returns the element under the cursor. It fails with
// api.ErrInvalidState before the first Next and after the traversal ends.
func (it *Iterator[T]) Current() (T, error) {
	if it.pos == -1 || it.processed > it.size || it.pos >= len(it.buf.storage) {
		var zero T
		return zero, errors.Wrap(api.ErrInvalidState, "iterator not on an element")
	}
	return it.buf.storage[it.pos], nil
}

// All returns a range-over-func sequence of logical index and element.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := b.Iterator()
		for i := 0; it.Next(); i++ {
			v, err := it.Current()
			if err != nil || !yield(i, v) {
				return
			}
		}
	}
}
