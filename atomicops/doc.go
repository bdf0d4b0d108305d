// Package atomicops
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Atomic read, exchange, increment and decrement on a caller-owned int64.
//
// Two strategies exist and behave identically to callers:
//
//   - native (default): sync/atomic instructions, lock free.
//   - locked (-tags atomicops_locked): every operation runs under one
//     process-wide critsec.Lock, created on first use.
//
// NativeAtomics reports which one the build selected. There is no runtime
// switch. Increment and Decrement wrap around on overflow.
//
// On 32-bit platforms the int64 must be 64-bit aligned, as for sync/atomic.
package atomicops
