// File: adapters/metrics_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// MetricsAdapter translates pool lifecycle callbacks into Prometheus
// instruments. It implements concurrency.Observer, so a pool constructed
// with it reports growth, queue depth and execution latency without the
// core package depending on Prometheus.

package adapters

import (
	"time"

	"github.com/momentics/hioload-threads/control"
	"github.com/momentics/hioload-threads/core/concurrency"
)

// MetricsAdapter feeds one named pool's callbacks into shared PoolMetrics.
type MetricsAdapter struct {
	metrics  *control.PoolMetrics
	poolName string
}

var _ concurrency.Observer = (*MetricsAdapter)(nil)

// NewMetricsAdapter binds metrics instruments to the given pool name.
func NewMetricsAdapter(metrics *control.PoolMetrics, poolName string) *MetricsAdapter {
	return &MetricsAdapter{metrics: metrics, poolName: poolName}
}

// ThreadSubmitted implements concurrency.Observer.
func (ma *MetricsAdapter) ThreadSubmitted(name string) {
	ma.metrics.ThreadsStarted.WithLabelValues(ma.poolName).Inc()
}

// ThreadCompleted implements concurrency.Observer.
func (ma *MetricsAdapter) ThreadCompleted(d time.Duration) {
	ma.metrics.ThreadsCompleted.WithLabelValues(ma.poolName).Inc()
	ma.metrics.ThreadDuration.WithLabelValues(ma.poolName).Observe(d.Seconds())
}

// WorkerSpawned implements concurrency.Observer.
func (ma *MetricsAdapter) WorkerSpawned(total int) {
	ma.metrics.WorkersSpawned.WithLabelValues(ma.poolName).Inc()
	ma.metrics.PoolSize.WithLabelValues(ma.poolName).Set(float64(total))
}

// QueueState implements concurrency.Observer.
func (ma *MetricsAdapter) QueueState(pending, idle int) {
	ma.metrics.QueueDepth.WithLabelValues(ma.poolName).Set(float64(pending))
	ma.metrics.IdleWorkers.WithLabelValues(ma.poolName).Set(float64(idle))
}
