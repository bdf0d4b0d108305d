// File: critsec/lock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package critsec

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/goid"
)

var (
	_ api.Locker            = (*Lock)(nil)
	_ api.OwnerIntrospector = (*Lock)(nil)
	_ sync.Locker           = (*Lock)(nil)
)

// Lock is a recursive exclusive lock. The zero value is an unheld lock.
// A Lock must not be copied after first use.
type Lock struct {
	base baseMutex

	// owner is the goroutine id of the holder, goid.None while unheld.
	owner atomic.Int64

	// depth is touched only by the holder.
	depth int

	track ownerTrack
}

// New returns an unheld lock.
func New() *Lock {
	return &Lock{}
}

// Acquire blocks until the calling goroutine holds l.
// If the caller already holds l, Acquire returns immediately and one more
// Release is required.
func (l *Lock) Acquire() {
	me := goid.Current()
	if l.owner.Load() == me {
		l.depth++
		return
	}
	l.base.lock()
	l.enter(me)
}

// TryAcquire takes l without blocking. It reports true if l was free or is
// already held by the caller, false if another goroutine holds it.
func (l *Lock) TryAcquire() bool {
	me := goid.Current()
	if l.owner.Load() == me {
		l.depth++
		return true
	}
	if !l.base.tryLock() {
		return false
	}
	l.enter(me)
	return true
}

// Release drops one level of ownership. The caller must hold l.
func (l *Lock) Release() {
	l.depth--
	if l.depth > 0 {
		return
	}
	l.track.releasing()
	l.owner.Store(goid.None)
	l.base.unlock()
}

func (l *Lock) enter(me int64) {
	l.owner.Store(me)
	l.depth = 1
	l.track.acquired()
}

// CurrentThreadIsOwner reports whether the calling goroutine holds l.
// Use it for assertions only: the answer about other goroutines' ownership
// can change at any moment, only the caller's own state is stable.
func (l *Lock) CurrentThreadIsOwner() bool {
	return l.owner.Load() == goid.Current()
}

// Do runs fn while holding l. The lock is released even if fn panics.
func (l *Lock) Do(fn func()) {
	l.Acquire()
	defer l.Release()
	fn()
}

// Lock is Acquire, for use as a sync.Locker.
func (l *Lock) Lock() { l.Acquire() }

// Unlock is Release, for use as a sync.Locker.
func (l *Lock) Unlock() { l.Release() }

// TryLock is TryAcquire.
func (l *Lock) TryLock() bool { return l.TryAcquire() }

// Held reports whether any goroutine holds l. Diagnostic snapshot only.
func (l *Lock) Held() bool {
	return l.owner.Load() != goid.None
}

// Owner returns the goroutine id of the current holder, or 0.
// Diagnostic snapshot only.
func (l *Lock) Owner() int64 {
	return l.owner.Load()
}

// OwnerThread returns the OS thread id observed when the current holder
// acquired l. It is always 0 unless built with -tags critsec_debug, and 0 on
// platforms without a thread id. The goroutine may have migrated since.
func (l *Lock) OwnerThread() int64 {
	return l.track.thread()
}
