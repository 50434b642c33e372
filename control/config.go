// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload propagation.

package control

import (
	"sync"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values and dispatches reload listeners.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
