// Package api
// Author: momentics
//
// Mock/testing utilities for all core contracts; extendable for new interfaces.

package api

// MockSpawner is a test and mock-friendly implementation of Spawner.
type MockSpawner struct {
	SpawnFunc func(name string, body func()) (Thread, error)
}

func (m *MockSpawner) SpawnThread(name string, body func()) (Thread, error) {
	return m.SpawnFunc(name, body)
}

// MockSignal is a test and mock-friendly implementation of Signal.
type MockSignal struct {
	NotifyFunc func()
	WaitFunc   func()
}

func (m *MockSignal) Notify() { m.NotifyFunc() }
func (m *MockSignal) Wait()   { m.WaitFunc() }

// MockThread is a test and mock-friendly implementation of Thread.
type MockThread struct {
	NameFunc func() string
	JoinFunc func()
}

func (m *MockThread) Name() string { return m.NameFunc() }
func (m *MockThread) Join()        { m.JoinFunc() }

// Extend with mocks for additional core contracts as architecture evolves.
