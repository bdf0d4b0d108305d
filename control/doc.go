// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection for hioload-sync.
//
// DebugProbes is a registry of named probe functions. Helpers register probes
// for locks, counters and the build configuration:
//   - RegisterLock:     held state, owner goroutine and owner OS thread
//   - RegisterCounter:  current value read through atomicops
//   - RegisterPlatformProbes: base mutex kind, atomic strategy, CPU features
//
// Probe values are snapshots and may be stale by the time they are read.
package control
