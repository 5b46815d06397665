// Package api
// Author: momentics@gmail.com
//
// Ring and deque contracts shared by the ring buffer, its lock wrapper and adapters.

package api

// Ring is a FIFO ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// Deque is a double-ended ring buffer with indexed access.
type Deque[T any] interface {
	// AddFirst inserts before the logical first element.
	AddFirst(item T) error
	// AddLast inserts after the logical last element.
	AddLast(item T) error
	// RemoveFirst removes and returns the logical first element.
	RemoveFirst() (T, error)
	// RemoveLast removes and returns the logical last element.
	RemoveLast() (T, error)
	// Get returns the element at logical index i.
	Get(i int) (T, error)
	// Set replaces the element at logical index i.
	Set(i int, item T) error
	Len() int
	Cap() int
	// ToSlice returns an independent copy in logical order.
	ToSlice() []T
	// Reset drops all elements, keeping storage.
	Reset()
}

// Iterator is a forward-only cursor over one traversal.
// It starts positioned before the first element.
type Iterator[T any] interface {
	// Next advances the cursor; false once the traversal is exhausted.
	Next() bool
	// Current returns the element under the cursor.
	Current() (T, error)
	// Reset rewinds the cursor to before the first element.
	Reset()
}
