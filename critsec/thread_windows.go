//go:build windows
// +build windows

// File: critsec/thread_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package critsec

import "golang.org/x/sys/windows"

// osThreadID returns the Win32 id of the calling thread. Windows never hands
// out thread id 0, so 0 stays free as the unowned value.
func osThreadID() int64 {
	return int64(windows.GetCurrentThreadId())
}
