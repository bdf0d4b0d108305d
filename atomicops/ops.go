// File: atomicops/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomicops

// Get returns the current value of *p.
func Get(p *int64) int64 {
	return strategy{}.get(p)
}

// Set stores v into *p and returns the value it replaced.
func Set(p *int64, v int64) (prev int64) {
	return strategy{}.swap(p, v)
}

// Increment adds one to *p and returns the new value.
func Increment(p *int64) int64 {
	return strategy{}.add(p, 1)
}

// Decrement subtracts one from *p and returns the new value.
func Decrement(p *int64) int64 {
	return strategy{}.add(p, -1)
}
