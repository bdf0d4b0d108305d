// File: atomicops/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock based fallback. All counters share one lock, so unrelated counters
// serialize against each other; correctness does not depend on the sharing.

package atomicops

import (
	"sync"

	"github.com/momentics/hioload-sync/critsec"
)

var (
	sharedOnce sync.Once
	shared     *critsec.Lock
)

// sharedLock returns the process-wide fallback lock, creating it on first use.
func sharedLock() *critsec.Lock {
	sharedOnce.Do(func() {
		shared = critsec.New()
	})
	return shared
}

// lockedStrategy runs each read-modify-write under sharedLock.
type lockedStrategy struct{}

func (lockedStrategy) get(p *int64) int64 {
	l := sharedLock()
	l.Acquire()
	v := *p
	l.Release()
	return v
}

func (lockedStrategy) swap(p *int64, v int64) int64 {
	l := sharedLock()
	l.Acquire()
	prev := *p
	*p = v
	l.Release()
	return prev
}

func (lockedStrategy) add(p *int64, delta int64) int64 {
	l := sharedLock()
	l.Acquire()
	*p += delta
	v := *p
	l.Release()
	return v
}
