// File: core/concurrency/spawner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default thread-creation facility: one goroutine per physical worker,
// optionally locked to its OS thread and named for debuggers and
// /proc/<pid>/task inspection.

package concurrency

import (
	"log"
	"runtime"

	"github.com/momentics/hioload-threads/api"
	internal "github.com/momentics/hioload-threads/internal/concurrency"
)

// GoSpawner is the default api.Spawner. Each spawned worker runs on a
// fresh goroutine; with lockOSThread set the goroutine is wired to a
// dedicated OS thread for its entire lifetime and the thread is renamed
// where the platform supports it.
type GoSpawner struct {
	lockOSThread bool
}

var _ api.Spawner = (*GoSpawner)(nil)

// NewGoSpawner creates a spawner. lockOSThread trades scheduler freedom
// for real OS-thread identity per worker.
func NewGoSpawner(lockOSThread bool) *GoSpawner {
	return &GoSpawner{lockOSThread: lockOSThread}
}

// SpawnThread runs body on a new goroutine and returns a joinable handle.
// It never fails; the error return exists for spawners with real failure
// modes (resource limits, test doubles).
func (s *GoSpawner) SpawnThread(name string, body func()) (api.Thread, error) {
	t := &osThread{name: name, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		if s.lockOSThread {
			runtime.LockOSThread()
			if err := internal.SetCurrentThreadName(name); err != nil {
				log.Printf("spawner: failed to name thread %s: %v", name, err)
			}
		}
		body()
	}()
	return t, nil
}

// osThread is the handle to one physical worker goroutine.
type osThread struct {
	name string
	done chan struct{}
}

func (t *osThread) Name() string { return t.name }

// Join blocks until the worker body has returned.
func (t *osThread) Join() { <-t.done }
