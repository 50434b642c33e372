package concurrency

import (
	"runtime"
	"testing"
)

func TestSetCurrentThreadName(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := SetCurrentThreadName("hioload-test"); err != nil {
		t.Fatalf("SetCurrentThreadName: %v", err)
	}
	// Names longer than the kernel limit must be truncated, not rejected.
	if err := SetCurrentThreadName("a-very-long-thread-name-beyond-limit"); err != nil {
		t.Fatalf("SetCurrentThreadName long name: %v", err)
	}
}
