// control/prometheus.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus instruments for thread pools. Instruments are labelled by
// pool name so several pools can share one registry.

package control

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PoolMetrics holds all Prometheus metrics for thread pools.
type PoolMetrics struct {
	ThreadsStarted   *prometheus.CounterVec
	ThreadsCompleted *prometheus.CounterVec
	ThreadDuration   *prometheus.HistogramVec
	WorkersSpawned   *prometheus.CounterVec
	PoolSize         *prometheus.GaugeVec
	QueueDepth       *prometheus.GaugeVec
	IdleWorkers      *prometheus.GaugeVec
}

// NewPoolMetrics creates and registers all thread pool metrics with reg.
// A nil reg falls back to the default Prometheus registerer.
func NewPoolMetrics(reg prometheus.Registerer) *PoolMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PoolMetrics{
		ThreadsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "threadpool_logical_threads_started_total",
				Help: "Total number of logical threads submitted to the pool",
			},
			[]string{"pool_name"},
		),
		ThreadsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "threadpool_logical_threads_completed_total",
				Help: "Total number of logical threads that finished executing",
			},
			[]string{"pool_name"},
		),
		ThreadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "threadpool_logical_thread_duration_seconds",
				Help:    "Execution duration of logical thread bodies in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),
		WorkersSpawned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "threadpool_workers_spawned_total",
				Help: "Total number of physical workers created by the growth policy",
			},
			[]string{"pool_name"},
		),
		PoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "threadpool_pool_size",
				Help: "Current number of physical workers owned by the pool",
			},
			[]string{"pool_name"},
		),
		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "threadpool_queue_depth",
				Help: "Current number of pending work items in the queue",
			},
			[]string{"pool_name"},
		),
		IdleWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "threadpool_idle_workers",
				Help: "Current number of physical workers waiting for work",
			},
			[]string{"pool_name"},
		),
	}
}
