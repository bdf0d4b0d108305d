// Package api
// Author: momentics <momentics@gmail.com>
//
// Live introspection of locks, counters and platform capabilities.

package api

// Debug exposes runtime introspection.
type Debug interface {
	// DumpState emits a snapshot of every registered probe.
	DumpState() map[string]any

	// RegisterProbe registers or replaces a named probe.
	RegisterProbe(name string, fn func() any)
}
