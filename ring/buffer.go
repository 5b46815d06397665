// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer state, construction and flag accessors.

package ring

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Buffer[any])(nil)

// Stats counts overflow policy decisions over the buffer lifetime.
type Stats struct {
	Grows      uint64
	Overwrites uint64
	Rejected   uint64
}

// Buffer is a fixed- or growable-capacity double-ended ring buffer.
//
// When size > 0 the occupied region is the circular span start..end
// inclusive; when size == 0 start and end carry no meaning.
type Buffer[T any] struct {
	storage     []T
	start       int
	end         int
	size        int
	maxCapacity int
	growable    bool
	overwriting bool
	stats       Stats
	log         *zap.Logger
}

// New allocates a buffer with the given initial capacity.
// Without options the buffer is fixed-size and rejects inserts when full.
func New[T any](capacity int, opts ...Option) (*Buffer[T], error) {
	o := Options{Capacity: capacity}
	for _, opt := range opts {
		opt(&o)
	}
	return FromOptions[T](o)
}

// FromOptions allocates a buffer from a plain configuration struct.
func FromOptions[T any](o Options) (*Buffer[T], error) {
	if o.Capacity < 0 {
		return nil, errors.Wrapf(api.ErrInvalidArgument, "negative capacity %d", o.Capacity)
	}
	if o.MaxCapacity < 0 {
		return nil, errors.Wrapf(api.ErrInvalidArgument, "negative max capacity %d", o.MaxCapacity)
	}
	if o.MaxCapacity > 0 && o.Capacity > o.MaxCapacity {
		return nil, errors.Wrapf(api.ErrInvalidArgument,
			"capacity %d above max capacity %d", o.Capacity, o.MaxCapacity)
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Buffer[T]{
		storage:     make([]T, o.Capacity),
		maxCapacity: o.MaxCapacity,
		growable:    o.Growable,
		overwriting: o.Overwriting,
		log:         log,
	}, nil
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the allocated capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

func (b *Buffer[T]) IsFull() bool {
	return b.size == len(b.storage)
}

// Growable reports whether overflow triggers growth.
func (b *Buffer[T]) Growable() bool {
	return b.growable
}

// SetGrowable toggles growth on overflow.
func (b *Buffer[T]) SetGrowable(on bool) {
	b.growable = on
}

// Overwriting reports whether overflow evicts the opposite end.
func (b *Buffer[T]) Overwriting() bool {
	return b.overwriting
}

// SetOverwriting toggles eviction on overflow.
func (b *Buffer[T]) SetOverwriting(on bool) {
	b.overwriting = on
}

// MaxCapacity returns the growth ceiling, zero if unlimited.
func (b *Buffer[T]) MaxCapacity() int {
	return b.maxCapacity
}

// SetMaxCapacity changes the growth ceiling. A non-zero ceiling below the
// current capacity is rejected.
func (b *Buffer[T]) SetMaxCapacity(n int) error {
	if n < 0 || (n > 0 && n < len(b.storage)) {
		return errors.Wrapf(api.ErrInvalidArgument,
			"max capacity %d below capacity %d", n, len(b.storage))
	}
	b.maxCapacity = n
	return nil
}

// Stats returns a copy of the policy counters.
func (b *Buffer[T]) Stats() Stats {
	return b.stats
}

// ResetStats zeroes the policy counters.
func (b *Buffer[T]) ResetStats() {
	b.stats = Stats{}
}

// Reset drops all elements without releasing storage. Slots are zeroed so
// the buffer stops referencing them.
func (b *Buffer[T]) Reset() {
	clear(b.storage)
	b.start = 0
	b.end = 0
	b.size = 0
}
