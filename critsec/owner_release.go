//go:build !critsec_debug

// File: critsec/owner_release.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package critsec

// TrackOwner is true when locks record the owner's OS thread.
const TrackOwner = false

type ownerTrack struct{}

func (ownerTrack) acquired()     {}
func (ownerTrack) releasing()    {}
func (ownerTrack) thread() int64 { return 0 }
