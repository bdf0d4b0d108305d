// Package critsec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recursive critical section for hioload-sync.
//
// A Lock is an exclusive lock owned by a goroutine. The owner may acquire it
// again without deadlocking and must release it once per acquisition. Other
// goroutines block in Acquire, or fail fast in TryAcquire, until the owner has
// released every level.
//
// The base mutex underneath Lock is chosen per platform at build time:
//
//   - default:                         sync.Mutex
//   - js, wasip1, or -tags critsec_spin: CAS spin lock yielding the processor
//
// Building with -tags critsec_debug additionally records the OS thread that
// acquired each lock (see Lock.OwnerThread). Locking semantics do not change.
//
// Contract violations are not checked: releasing a lock the caller does not
// hold, or dropping a held lock, is undefined behavior. With the default base
// an unmatched release usually ends in the runtime's fatal
// "sync: unlock of unlocked mutex".
package critsec
