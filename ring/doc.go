// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic double-ended ring buffer over one contiguous slice.
//
// A Buffer wraps its indices modulo capacity, so insertion and removal at
// either end never shift stored elements. When the buffer is full an insert
// follows the configured overflow policy:
//   - growable: capacity doubles (minimum 1, clamped to the max capacity)
//     and the insert is retried once;
//   - overwriting: the element at the opposite end is evicted;
//   - neither: the insert fails with api.ErrCapacityExceeded.
//
// Growth takes precedence over overwriting when both are enabled.
//
// Buffer is not safe for concurrent use. Locked wraps one behind a mutex.
package ring
