// File: internal/concurrency/osthread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-generic entry point for OS-thread naming. The platform
// implementation is selected via build tags.

package concurrency

// SetCurrentThreadName renames the calling OS thread so pooled workers are
// identifiable in debuggers and process listings. Callers must have locked
// the goroutine to its OS thread first (runtime.LockOSThread), otherwise
// the name lands on an arbitrary thread. Best effort: unsupported
// platforms return nil without renaming anything.
func SetCurrentThreadName(name string) error {
	return setThreadName(name)
}
