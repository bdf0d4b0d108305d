// File: atomicops/native.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomicops

import "sync/atomic"

// nativeStrategy maps every operation onto one sync/atomic instruction.
type nativeStrategy struct{}

func (nativeStrategy) get(p *int64) int64 {
	return atomic.LoadInt64(p)
}

func (nativeStrategy) swap(p *int64, v int64) int64 {
	return atomic.SwapInt64(p, v)
}

func (nativeStrategy) add(p *int64, delta int64) int64 {
	return atomic.AddInt64(p, delta)
}
