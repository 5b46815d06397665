// File: ring/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor arithmetic and capacity management.

package ring

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// next returns the physical slot after pos, wrapping at capacity.
func (b *Buffer[T]) next(pos int) (int, error) {
	n := len(b.storage)
	if n == 0 {
		return 0, errors.Wrap(api.ErrInvalidState, "index arithmetic on zero capacity")
	}
	if pos == n-1 {
		return 0, nil
	}
	return pos + 1, nil
}

// prev returns the physical slot before pos, wrapping at zero.
func (b *Buffer[T]) prev(pos int) (int, error) {
	n := len(b.storage)
	if n == 0 {
		return 0, errors.Wrap(api.ErrInvalidState, "index arithmetic on zero capacity")
	}
	if pos == 0 {
		return n - 1, nil
	}
	return pos - 1, nil
}

// physical maps logical index i, already range-checked, to its slot.
func (b *Buffer[T]) physical(i int) int {
	p := b.start + i
	if p >= len(b.storage) {
		p -= len(b.storage)
	}
	return p
}

// SetCapacity reallocates storage to exactly n slots, keeping the logical
// order. Shrinking below the current size fails and leaves the buffer intact.
func (b *Buffer[T]) SetCapacity(n int) error {
	if b.maxCapacity > 0 && n > b.maxCapacity {
		return errors.Wrapf(api.ErrInvalidArgument,
			"capacity %d above max capacity %d", n, b.maxCapacity)
	}
	return b.grow(n)
}

// grow moves the live elements to the head of a fresh block of n slots.
// This is the only place the physical layout is defragmented.
func (b *Buffer[T]) grow(n int) error {
	if n < b.size {
		return errors.Wrapf(api.ErrInvalidArgument, "capacity %d below size %d", n, b.size)
	}
	fresh := make([]T, n)
	b.copyTo(fresh)
	b.storage = fresh
	b.start = 0
	b.end = 0
	if b.size > 0 {
		b.end = b.size - 1
	}
	return nil
}

// canGrow reports whether an overflow may be resolved by growth.
func (b *Buffer[T]) canGrow() bool {
	return b.growable && (b.maxCapacity == 0 || len(b.storage) < b.maxCapacity)
}

// growOnOverflow doubles the capacity, minimum 1, clamped to maxCapacity.
func (b *Buffer[T]) growOnOverflow() error {
	from := len(b.storage)
	to := max(1, from*2)
	if b.maxCapacity > 0 && to > b.maxCapacity {
		to = b.maxCapacity
	}
	if err := b.grow(to); err != nil {
		return err
	}
	b.stats.Grows++
	b.log.Debug("ring buffer grown", zap.Int("from", from), zap.Int("to", to), zap.Int("size", b.size))
	return nil
}

// copyTo writes the live elements into dst in logical order.
// dst must hold at least size elements.
func (b *Buffer[T]) copyTo(dst []T) {
	if b.size == 0 {
		return
	}
	if b.start <= b.end {
		copy(dst, b.storage[b.start:b.end+1])
		return
	}
	n := copy(dst, b.storage[b.start:])
	copy(dst[n:], b.storage[:b.end+1])
}
