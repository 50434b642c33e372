// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the spawn contract.

package fake

import (
	"sync"

	"github.com/momentics/hioload-threads/api"
)

// Spawner is a fake implementation of api.Spawner for testing. Unless a
// spawn error is configured it behaves like the real goroutine spawner
// while recording every spawned thread name.
type Spawner struct {
	mu       sync.Mutex
	names    []string
	spawnErr error
}

// NewSpawner creates a fake spawner with default settings.
func NewSpawner() *Spawner {
	return &Spawner{}
}

var _ api.Spawner = (*Spawner)(nil)

// SpawnThread implements api.Spawner.SpawnThread.
func (s *Spawner) SpawnThread(name string, body func()) (api.Thread, error) {
	s.mu.Lock()
	if s.spawnErr != nil {
		err := s.spawnErr
		s.mu.Unlock()
		return nil, err
	}
	s.names = append(s.names, name)
	s.mu.Unlock()

	t := &fakeThread{name: name, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		body()
	}()
	return t, nil
}

// SetSpawnError configures the spawner to fail every subsequent spawn.
// Passing nil restores normal behavior.
func (s *Spawner) SetSpawnError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spawnErr = err
}

// SpawnedNames returns the names of all successfully spawned threads, in
// spawn order.
func (s *Spawner) SpawnedNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// SpawnCount returns how many threads have been spawned.
func (s *Spawner) SpawnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

type fakeThread struct {
	name string
	done chan struct{}
}

func (t *fakeThread) Name() string { return t.name }
func (t *fakeThread) Join()        { <-t.done }
