package adapters_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/momentics/hioload-threads/adapters"
	"github.com/momentics/hioload-threads/control"
	"github.com/momentics/hioload-threads/core/concurrency"
)

func TestMetricsAdapterCountsPoolActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := control.NewPoolMetrics(reg)
	observer := adapters.NewMetricsAdapter(metrics, "p1")

	pool := concurrency.NewUnboundedPool("p1", nil, observer)
	defer pool.Close()

	h, err := pool.Submit("job", func() { time.Sleep(time.Millisecond) })
	if err != nil {
		t.Fatal(err)
	}
	h.Join()

	if got := testutil.ToFloat64(metrics.ThreadsStarted.WithLabelValues("p1")); got != 1 {
		t.Errorf("threads started: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.WorkersSpawned.WithLabelValues("p1")); got != 1 {
		t.Errorf("workers spawned: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.PoolSize.WithLabelValues("p1")); got != 1 {
		t.Errorf("pool size gauge: got %v, want 1", got)
	}

	// Completion is recorded after the join signal fires; poll briefly.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if testutil.ToFloat64(metrics.ThreadsCompleted.WithLabelValues("p1")) == 1 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("threads completed never reached 1")
}
