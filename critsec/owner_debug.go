//go:build critsec_debug

// File: critsec/owner_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package critsec

import "sync/atomic"

// TrackOwner is true when locks record the owner's OS thread.
const TrackOwner = true

type ownerTrack struct {
	tid atomic.Int64
}

func (t *ownerTrack) acquired()     { t.tid.Store(osThreadID()) }
func (t *ownerTrack) releasing()    { t.tid.Store(0) }
func (t *ownerTrack) thread() int64 { return t.tid.Load() }
