//go:build linux
// +build linux

// File: critsec/thread_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package critsec

import "golang.org/x/sys/unix"

// osThreadID returns the kernel tid of the calling thread.
func osThreadID() int64 {
	return int64(unix.Gettid())
}
