// File: api/factory.go
// Package api defines the caller-facing thread contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Thread is a joinable handle to a unit of concurrent work. A logical
// thread handle holds only its completion signal; it carries no reference
// to the physical worker that happens to execute it.
type Thread interface {
	// Name returns the name the thread was started with.
	Name() string

	// Join blocks until the thread's body has fully returned. It never
	// times out on its own; callers needing timeouts must compose them.
	Join()
}

// ThreadFactory starts logical threads multiplexed onto pooled physical
// workers. It is the sole submission entry point exposed to callers.
type ThreadFactory interface {
	// StartThread schedules fn as a new logical thread and returns its
	// joinable handle. A spawn failure of the backing physical worker is
	// reported synchronously; the work is not retried or queued elsewhere.
	StartThread(name string, fn func()) (Thread, error)

	// Size returns the current number of physical workers. The value is a
	// snapshot and may race with concurrent spawns.
	Size() int
}

// Spawner is the consumed thread-creation facility. It is invoked once per
// physical worker; implementations decide how the body actually runs
// (plain goroutine, OS-thread-locked goroutine, test double).
type Spawner interface {
	SpawnThread(name string, body func()) (Thread, error)
}
