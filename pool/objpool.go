// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"

	"github.com/momentics/hioload-ring/ring"
)

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// BufferPool recycles ring buffers sharing one configuration.
// Buffers come back empty with the pool's flags, ceiling and zeroed stats.
// Growth acquired while in use is kept unless it exceeds the ceiling; a
// buffer shrunk below the configured capacity is resized back.
type BufferPool[T any] struct {
	opts ring.Options
	sp   *SyncPool[*ring.Buffer[T]]
}

// NewBufferPool validates opts once and returns a pool building from them.
func NewBufferPool[T any](opts ring.Options) (*BufferPool[T], error) {
	if _, err := ring.FromOptions[T](opts); err != nil {
		return nil, err
	}
	bp := &BufferPool[T]{opts: opts}
	bp.sp = NewSyncPool(func() *ring.Buffer[T] {
		// opts already validated above.
		b, _ := ring.FromOptions[T](bp.opts)
		return b
	})
	return bp, nil
}

// Get returns an empty buffer.
func (bp *BufferPool[T]) Get() *ring.Buffer[T] {
	return bp.sp.Get()
}

// Put resets b and returns it to the pool. Nil is ignored.
func (bp *BufferPool[T]) Put(b *ring.Buffer[T]) {
	if b == nil {
		return
	}
	if err := bp.restore(b); err != nil {
		// Unrecoverable layout; let the pool build a fresh one.
		return
	}
	bp.sp.Put(b)
}

// restore brings an emptied buffer back to the pool configuration.
func (bp *BufferPool[T]) restore(b *ring.Buffer[T]) error {
	b.Reset()
	b.ResetStats()
	if err := b.SetMaxCapacity(0); err != nil {
		return err
	}
	limit := bp.opts.MaxCapacity
	if b.Cap() < bp.opts.Capacity || (limit > 0 && b.Cap() > limit) {
		if err := b.SetCapacity(bp.opts.Capacity); err != nil {
			return err
		}
	}
	if err := b.SetMaxCapacity(limit); err != nil {
		return err
	}
	b.SetGrowable(bp.opts.Growable)
	b.SetOverwriting(bp.opts.Overwriting)
	return nil
}

var _ ObjectPool[*ring.Buffer[int]] = (*BufferPool[int])(nil)
