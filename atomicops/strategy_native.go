//go:build !atomicops_locked

// File: atomicops/strategy_native.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomicops

// NativeAtomics is true when operations use hardware atomics directly.
const NativeAtomics = true

type strategy = nativeStrategy
