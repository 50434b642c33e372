//go:build !linux
// +build !linux

// File: internal/concurrency/osthread_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without a supported thread-naming call.

package concurrency

// setThreadName is a no-op on this platform.
func setThreadName(name string) error {
	return nil
}
