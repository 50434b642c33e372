//go:build linux
// +build linux

// File: internal/concurrency/osthread_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation of OS-thread naming via prctl(PR_SET_NAME).

package concurrency

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// setThreadName names the calling thread. The kernel truncates names to
// 15 bytes plus a trailing NUL.
func setThreadName(name string) error {
	buf := make([]byte, 16)
	copy(buf[:15], name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}
