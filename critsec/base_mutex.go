//go:build !js && !wasip1 && !critsec_spin

// File: critsec/base_mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package critsec

// BaseKind names the base mutex compiled into Lock.
const BaseKind = "mutex"

type baseMutex = syncMutex
