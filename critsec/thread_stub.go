//go:build !linux && !windows
// +build !linux,!windows

// File: critsec/thread_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without a portable thread id.

package critsec

func osThreadID() int64 {
	return 0
}
