// File: facade/threads.go
// Unified facade layer for hioload-threads library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Threads struct, which aggregates the core
// components of the hioload-threads library behind a single facade. It
// initializes the unbounded pool, the spawner, Prometheus instruments and
// the control interface based on immutable configuration, and exposes
// methods to start logical threads, inspect pool size, and shut the pool
// down gracefully.

package facade

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-threads/adapters"
	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/control"
	"github.com/momentics/hioload-threads/core/concurrency"
)

// Config holds parameters immutable per pool.
// All fields influence initialization and cannot be changed at runtime;
// dynamic key/value state lives behind the Control interface instead.
type Config struct {
	Name          string `yaml:"name" json:"name"`                       // Pool name; prefixes worker thread names
	LockOSThreads bool   `yaml:"lock_os_threads" json:"lock_os_threads"` // Lock each worker goroutine to an OS thread
	EnableMetrics bool   `yaml:"enable_metrics" json:"enable_metrics"`   // Register Prometheus instruments
	EnableDebug   bool   `yaml:"enable_debug" json:"enable_debug"`       // Register pool state debug probes

	// Registerer receives the Prometheus instruments when EnableMetrics is
	// set. Nil selects the default registerer.
	Registerer prometheus.Registerer `yaml:"-" json:"-"`

	// Spawner overrides the thread-creation facility; nil selects the
	// goroutine-backed default honoring LockOSThreads.
	Spawner api.Spawner `yaml:"-" json:"-"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Name:          "hioload",
		LockOSThreads: false,
		EnableMetrics: true,
		EnableDebug:   true,
	}
}

// Threads is the main facade type.
// It implements api.GracefulShutdown to allow unified shutdown logic.
type Threads struct {
	pool    *concurrency.UnboundedPool
	factory api.ThreadFactory
	control *adapters.ControlAdapter
	metrics *control.PoolMetrics
	config  *Config
}

// Ensure compliance with core contracts.
var (
	_ api.GracefulShutdown = (*Threads)(nil)
	_ api.ThreadFactory    = (*Threads)(nil)
)

// New constructs Threads with the given configuration. It wires the
// spawner, the optional Prometheus observer, the control surface and the
// pool state debug probes.
func New(cfg *Config) (*Threads, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Name == "" {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool name must not be empty")
	}

	spawner := cfg.Spawner
	if spawner == nil {
		spawner = concurrency.NewGoSpawner(cfg.LockOSThreads)
	}

	var observer concurrency.Observer
	var metrics *control.PoolMetrics
	if cfg.EnableMetrics {
		metrics = control.NewPoolMetrics(cfg.Registerer)
		observer = adapters.NewMetricsAdapter(metrics, cfg.Name)
	}

	pool := concurrency.NewUnboundedPool(cfg.Name, spawner, observer)
	ctrl := adapters.NewControlAdapter()
	if cfg.EnableDebug {
		ctrl.RegisterDebugProbe("pool.size", func() any { return pool.Size() })
		ctrl.RegisterDebugProbe("pool.idle", func() any { return pool.Stats().Idle })
		ctrl.RegisterDebugProbe("pool.pending", func() any { return pool.Stats().Pending })
	}

	return &Threads{
		pool:    pool,
		factory: adapters.NewFactoryAdapter(pool),
		control: ctrl,
		metrics: metrics,
		config:  cfg,
	}, nil
}

// StartThread schedules fn as a new logical thread. It is the sole
// submission entry point; a spawn failure surfaces here synchronously.
// Failures are reported as *api.Error with the underlying pool error
// available through errors.Is/errors.As.
func (t *Threads) StartThread(name string, fn func()) (api.Thread, error) {
	h, err := t.factory.StartThread(name, fn)
	if err != nil {
		return nil, classify(err).WithContext("thread", name)
	}
	return h, nil
}

// classify maps pool-layer errors onto the structured api error codes.
func classify(err error) *api.Error {
	switch {
	case errors.Is(err, concurrency.ErrPoolClosed):
		return api.WrapError(api.ErrCodePoolClosed, "pool is shut down", err)
	case errors.Is(err, concurrency.ErrNilCallable):
		return api.WrapError(api.ErrCodeInvalidArgument, "invalid callable", err)
	default:
		return api.WrapError(api.ErrCodeSpawnFailed, "physical thread spawn failed", err)
	}
}

// Size returns the current number of physical workers.
func (t *Threads) Size() int {
	return t.factory.Size()
}

// GetControl returns the dynamic config/metrics/debug surface.
func (t *Threads) GetControl() api.Control {
	return t.control
}

// GetDebug returns the probe registry behind the api.Debug contract.
func (t *Threads) GetDebug() api.Debug {
	return t.control.GetDebug()
}

// GetFactory returns the raw thread factory, for callers that pass the
// submission capability onward without exposing the facade.
func (t *Threads) GetFactory() api.ThreadFactory {
	return t.factory
}

// Metrics returns the Prometheus instruments, or nil when metrics are
// disabled.
func (t *Threads) Metrics() *control.PoolMetrics {
	return t.metrics
}

// Shutdown drains the queue and joins every physical worker. New
// submissions during or after Shutdown violate the pool contract and are
// rejected on a best-effort basis.
func (t *Threads) Shutdown() error {
	t.pool.Close()
	return nil
}
