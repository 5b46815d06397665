// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for ring buffer monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-ring/ring"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Updated returns the time of the last write.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// PublishStats writes one buffer's gauges and counters under prefix.
func (mr *MetricsRegistry) PublishStats(prefix string, s ring.Stats, size, capacity int) {
	mr.mu.Lock()
	mr.metrics[prefix+".size"] = size
	mr.metrics[prefix+".capacity"] = capacity
	mr.metrics[prefix+".grows"] = s.Grows
	mr.metrics[prefix+".overwrites"] = s.Overwrites
	mr.metrics[prefix+".rejected"] = s.Rejected
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// PublishRing reads a consistent view of l and publishes it under prefix.
func PublishRing[T any](mr *MetricsRegistry, prefix string, l *ring.Locked[T]) {
	l.View(func(b *ring.Buffer[T]) {
		mr.PublishStats(prefix, b.Stats(), b.Len(), b.Cap())
	})
}
