// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/control"
)

type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterRuntimeProbes(adapter.debug)
	return adapter
}

var (
	_ api.Control = (*ControlAdapter)(nil)
	_ api.Debug   = (*control.DebugProbes)(nil)
)

// GetDebug exposes the probe registry as the api.Debug contract, so
// callers can register and dump probes without the full control surface.
func (c *ControlAdapter) GetDebug() api.Debug {
	return c.debug
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

func (c *ControlAdapter) AddMetric(key string, delta int64) {
	c.metrics.Add(key, delta)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
