// File: critsec/base.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-recursive base mutexes. Lock layers ownership and recursion on top of
// whichever one the build selects as baseMutex.

package critsec

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// nativeLock is the capability a platform base must provide.
type nativeLock interface {
	lock()
	tryLock() bool
	unlock()
}

var (
	_ nativeLock = (*syncMutex)(nil)
	_ nativeLock = (*spinMutex)(nil)
)

// syncMutex delegates to the runtime mutex, which parks waiters on the
// platform futex or semaphore.
type syncMutex struct {
	mu sync.Mutex
}

func (m *syncMutex) lock()         { m.mu.Lock() }
func (m *syncMutex) tryLock() bool { return m.mu.TryLock() }
func (m *syncMutex) unlock()       { m.mu.Unlock() }

// spinBeforeYield is the number of failed CAS attempts before yielding.
const spinBeforeYield = 16

// spinMutex is a test-and-set lock for targets where parking is not
// available or not worth it (single-threaded wasm).
type spinMutex struct {
	state atomic.Uint32
}

func (m *spinMutex) lock() {
	for spins := 0; !m.tryLock(); spins++ {
		if spins >= spinBeforeYield {
			runtime.Gosched()
			spins = 0
		}
	}
}

func (m *spinMutex) tryLock() bool {
	return m.state.Load() == 0 && m.state.CompareAndSwap(0, 1)
}

func (m *spinMutex) unlock() {
	m.state.Store(0)
}
