// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for ring buffer inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// ProbeRing returns a probe describing l: size, capacity, flags and stats.
func ProbeRing[T any](l *ring.Locked[T]) func() any {
	return func() any {
		state := make(map[string]any, 6)
		l.View(func(b *ring.Buffer[T]) {
			state["size"] = b.Len()
			state["capacity"] = b.Cap()
			state["max_capacity"] = b.MaxCapacity()
			state["growable"] = b.Growable()
			state["overwriting"] = b.Overwriting()
			state["stats"] = b.Stats()
		})
		return state
	}
}
