// File: ring/insert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// AddLast appends v after the logical last element. When the buffer is full
// it grows, evicts the first element, or fails with api.ErrCapacityExceeded,
// in that order of preference.
func (b *Buffer[T]) AddLast(v T) error {
	if !b.IsFull() {
		return b.pushBack(v)
	}
	switch {
	case b.canGrow():
		if err := b.growOnOverflow(); err != nil {
			return err
		}
		return b.pushBack(v)
	case b.overwriting && len(b.storage) > 0:
		end, err := b.next(b.end)
		if err != nil {
			return err
		}
		start, err := b.next(b.start)
		if err != nil {
			return err
		}
		b.storage[end] = v
		b.end, b.start = end, start
		b.evicted("first")
		return nil
	}
	b.stats.Rejected++
	return errors.Wrapf(api.ErrCapacityExceeded, "add last: capacity %d", len(b.storage))
}

// AddFirst prepends v before the logical first element. When the buffer is
// full it grows, evicts the last element, or fails with
// api.ErrCapacityExceeded, in that order of preference.
func (b *Buffer[T]) AddFirst(v T) error {
	if !b.IsFull() {
		return b.pushFront(v)
	}
	switch {
	case b.canGrow():
		if err := b.growOnOverflow(); err != nil {
			return err
		}
		return b.pushFront(v)
	case b.overwriting && len(b.storage) > 0:
		start, err := b.prev(b.start)
		if err != nil {
			return err
		}
		end, err := b.prev(b.end)
		if err != nil {
			return err
		}
		b.storage[start] = v
		b.start, b.end = start, end
		b.evicted("last")
		return nil
	}
	b.stats.Rejected++
	return errors.Wrapf(api.ErrCapacityExceeded, "add first: capacity %d", len(b.storage))
}

// pushBack stores v in a free slot after end. Caller guarantees !IsFull.
func (b *Buffer[T]) pushBack(v T) error {
	if b.size == 0 {
		b.start, b.end = 0, 0
	} else {
		end, err := b.next(b.end)
		if err != nil {
			return err
		}
		b.end = end
	}
	b.storage[b.end] = v
	b.size++
	return nil
}

// pushFront stores v in a free slot before start. Caller guarantees !IsFull.
func (b *Buffer[T]) pushFront(v T) error {
	if b.size == 0 {
		b.start, b.end = 0, 0
	} else {
		start, err := b.prev(b.start)
		if err != nil {
			return err
		}
		b.start = start
	}
	b.storage[b.start] = v
	b.size++
	return nil
}

func (b *Buffer[T]) evicted(side string) {
	b.stats.Overwrites++
	if ce := b.log.Check(zap.DebugLevel, "ring buffer overwrite"); ce != nil {
		ce.Write(zap.String("evicted", side), zap.Int("capacity", len(b.storage)))
	}
}
