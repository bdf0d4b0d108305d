//go:build js || wasip1 || critsec_spin

// File: critsec/base_spin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spin base for wasm targets, or anywhere with -tags critsec_spin.

package critsec

// BaseKind names the base mutex compiled into Lock.
const BaseKind = "spin"

type baseMutex = spinMutex
