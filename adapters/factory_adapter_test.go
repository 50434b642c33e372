package adapters_test

import (
	"testing"
	"time"

	"github.com/momentics/hioload-threads/adapters"
	"github.com/momentics/hioload-threads/core/concurrency"
)

func TestFactoryAdapterStartAndSize(t *testing.T) {
	pool := concurrency.NewUnboundedPool("factory", nil, nil)
	defer pool.Close()
	factory := adapters.NewFactoryAdapter(pool)

	if got := factory.Size(); got != 0 {
		t.Fatalf("fresh pool size: got %d, want 0", got)
	}

	executed := make(chan struct{})
	h, err := factory.StartThread("job", func() { close(executed) })
	if err != nil {
		t.Fatal(err)
	}
	select {
	case <-executed:
	case <-time.After(5 * time.Second):
		t.Fatal("logical thread never executed")
	}
	h.Join()

	if got := factory.Size(); got != 1 {
		t.Fatalf("pool size after first submission: got %d, want 1", got)
	}
}
