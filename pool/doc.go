// Package pool
// Author: momentics <momentics@gmail.com>
//
// Pooling and FIFO adapters for ring buffers.
// BufferRing exposes a ring.Buffer through the api.Ring contract; BufferPool
// recycles buffers between short-lived users through sync.Pool.
// See buffer_ring.go and objpool.go for implementation details.
package pool
