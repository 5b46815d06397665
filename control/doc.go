// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for ring buffers.
//
// Provides concurrent-safe state handling primitives including:
//   - YAML config loading with aggregated validation errors
//   - A config store with reload listeners and ApplyTo for live buffers
//   - Metrics publishing of buffer size, capacity and policy counters
//   - Debug probe registration for ring.Locked buffers
package control
