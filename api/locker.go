// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts shared by the lock and counter packages and their consumers.

package api

// Locker is an exclusive lock with blocking, non-blocking and release
// operations. Implementations may be recursive.
type Locker interface {
	// Acquire blocks until the caller holds the lock.
	Acquire()

	// TryAcquire takes the lock without blocking and reports success.
	TryAcquire() bool

	// Release drops one level of ownership held by the caller.
	Release()
}

// OwnerIntrospector answers whether the calling goroutine holds a lock.
// The answer is only reliable for the caller's own ownership and is meant
// for assertions, not control flow.
type OwnerIntrospector interface {
	CurrentThreadIsOwner() bool
}
