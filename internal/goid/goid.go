// File: internal/goid/goid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Goroutine identity for lock ownership.

// Package goid reports the id of the calling goroutine.
//
// Go does not expose goroutine ids, so the id is parsed from the header line
// of runtime.Stack ("goroutine 123 [running]:"). Ids are positive and unique
// for the lifetime of the goroutine, so 0 is free to serve as a "nobody"
// sentinel.
package goid

import "runtime"

// None is never returned by Current.
const None int64 = 0

const prefix = "goroutine "

// Current returns the id of the calling goroutine.
func Current() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return Parse(buf[:n])
}

// Parse extracts the goroutine id from a runtime.Stack header.
// It returns None if buf does not start with a goroutine header.
func Parse(buf []byte) int64 {
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return None
	}
	var id int64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}
