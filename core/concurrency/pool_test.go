package concurrency

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/fake"
)

func TestPoolGrowsOnePerBlockedSubmission(t *testing.T) {
	pool := NewUnboundedPool("grow", nil, nil)
	defer pool.Close()

	const n = 8
	gate := make(chan struct{})
	var started sync.WaitGroup
	started.Add(n)

	handles := make([]api.Thread, 0, n)
	for i := 0; i < n; i++ {
		h, err := pool.Submit(fmt.Sprintf("unit-%d", i), func() {
			started.Done()
			<-gate
		})
		if err != nil {
			t.Fatal(err)
		}
		handles = append(handles, h)
	}
	started.Wait()

	// Every submission found zero idle workers, so each spawned exactly one.
	if got := pool.Size(); got != n {
		t.Fatalf("expected %d workers, got %d", n, got)
	}

	close(gate)
	var g errgroup.Group
	for _, h := range handles {
		h := h
		g.Go(func() error {
			h.Join()
			return nil
		})
	}
	joined := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(joined)
	}()
	select {
	case <-joined:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout joining blocked logical threads")
	}
}

func TestPoolReusesIdleWorkerThenGrows(t *testing.T) {
	pool := NewUnboundedPool("reuse", nil, nil)
	defer pool.Close()

	warm, err := pool.Submit("warmup", func() {})
	if err != nil {
		t.Fatal(err)
	}
	warm.Join()
	waitFor(t, time.Second, func() bool { return pool.Stats().Idle == 1 })
	if got := pool.Size(); got != 1 {
		t.Fatalf("expected 1 worker after warmup, got %d", got)
	}

	start := time.Now()
	sleeper := func() { time.Sleep(50 * time.Millisecond) }

	first, err := pool.Submit("sleep-0", sleeper)
	if err != nil {
		t.Fatal(err)
	}
	// Wait until the idle worker has actually dequeued the first item so
	// the next submissions deterministically find zero idle workers.
	waitFor(t, time.Second, func() bool { return pool.Stats().Idle == 0 })

	rest := []api.Thread{first}
	for i := 1; i < 3; i++ {
		h, err := pool.Submit(fmt.Sprintf("sleep-%d", i), sleeper)
		if err != nil {
			t.Fatal(err)
		}
		rest = append(rest, h)
	}
	for _, h := range rest {
		h.Join()
	}
	elapsed := time.Since(start)

	if got := pool.Size(); got != 3 {
		t.Fatalf("expected pool to grow to 3 workers, got %d", got)
	}
	// All three sleeps overlap; full serialization would take 150ms. The
	// bound leaves headroom for scheduler jitter on a loaded runner.
	if elapsed >= 140*time.Millisecond {
		t.Errorf("sleeps did not run in parallel: took %v", elapsed)
	}
}

func TestPoolSizeNeverShrinksWhileAlive(t *testing.T) {
	pool := NewUnboundedPool("mono", nil, nil)
	defer pool.Close()

	peak := 0
	for i := 0; i < 5; i++ {
		h, err := pool.Submit("burst", func() { time.Sleep(5 * time.Millisecond) })
		if err != nil {
			t.Fatal(err)
		}
		h.Join()
		if got := pool.Size(); got < peak {
			t.Fatalf("pool shrank from %d to %d", peak, got)
		} else {
			peak = got
		}
	}
}

func TestNestedSubmitAndJoin(t *testing.T) {
	pool := NewUnboundedPool("nested", nil, nil)
	defer pool.Close()

	done := make(chan struct{})
	parent, err := pool.Submit("parent", func() {
		child, err := pool.Submit("child", func() {})
		if err != nil {
			t.Errorf("nested submit failed: %v", err)
			return
		}
		child.Join()
		close(done)
	})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("nested submit-and-join deadlocked")
	}
	parent.Join()
	if got := pool.Size(); got < 2 {
		t.Errorf("expected at least 2 workers for nested chain, got %d", got)
	}
}

func TestJoinReturnsOnlyAfterCallableFinished(t *testing.T) {
	pool := NewUnboundedPool("join", nil, nil)
	defer pool.Close()

	var finished atomic.Bool
	h, err := pool.Submit("exact", func() {
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})
	if err != nil {
		t.Fatal(err)
	}
	h.Join()
	if !finished.Load() {
		t.Fatal("Join returned before the callable finished")
	}
}

func TestWorkerLoopDrainsQueueInOrder(t *testing.T) {
	pool := NewUnboundedPool("fifo", nil, nil)

	var mu sync.Mutex
	var order []int

	// Drive a single worker loop directly so queued items cannot trigger
	// growth and must execute in submission order.
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		pool.workerLoop(nil)
	}()

	const k = 8
	var last *Notification
	pool.queue.mu.Lock()
	for i := 0; i < k; i++ {
		i := i
		item := newWorkItem(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
		last = item.done
		pool.queue.items.Add(item)
	}
	pool.queue.mu.Unlock()
	pool.queue.cond.Broadcast()

	last.Wait()
	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("execution order violated FIFO: position %d got %d", i, got)
		}
	}

	pool.queue.cancel()
	select {
	case <-exited:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not terminate after cancel")
	}
}

func TestCloseDrainsAndZeroesSize(t *testing.T) {
	pool := NewUnboundedPool("teardown", nil, nil)

	var counter atomic.Int64
	const k = 6
	for i := 0; i < k; i++ {
		if _, err := pool.Submit("tick", func() { counter.Add(1) }); err != nil {
			t.Fatal(err)
		}
	}

	pool.Close()
	if got := counter.Load(); got != k {
		t.Fatalf("queued items lost during teardown: ran %d of %d", got, k)
	}
	if got := pool.Size(); got != 0 {
		t.Fatalf("Size after Close: got %d, want 0", got)
	}

	pool.Close() // idempotent

	if _, err := pool.Submit("late", func() {}); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("submit after Close: got %v, want ErrPoolClosed", err)
	}
}

func TestSpawnFailurePropagates(t *testing.T) {
	spawner := fake.NewSpawner()
	pool := NewUnboundedPool("spawnfail", spawner, nil)
	defer pool.Close()

	boom := errors.New("thread limit reached")
	spawner.SetSpawnError(boom)
	if _, err := pool.Submit("doomed", func() {}); !errors.Is(err, boom) {
		t.Fatalf("expected spawn error, got %v", err)
	}
	if got := pool.Size(); got != 0 {
		t.Fatalf("failed spawn must not register a worker, got size %d", got)
	}

	spawner.SetSpawnError(nil)
	h, err := pool.Submit("ok", func() {})
	if err != nil {
		t.Fatal(err)
	}
	h.Join()
	if got := pool.Size(); got != 1 {
		t.Fatalf("expected 1 worker after recovery, got %d", got)
	}
	names := spawner.SpawnedNames()
	if len(names) != 1 || names[0] != "spawnfail-worker-2" {
		t.Fatalf("unexpected spawned names: %v", names)
	}
}

func TestPoolNamesWorkersThroughSpawner(t *testing.T) {
	var mu sync.Mutex
	var spawned []string

	real := NewGoSpawner(false)
	mock := &api.MockSpawner{
		SpawnFunc: func(name string, body func()) (api.Thread, error) {
			mu.Lock()
			spawned = append(spawned, name)
			mu.Unlock()
			return real.SpawnThread(name, body)
		},
	}

	pool := NewUnboundedPool("front", mock, nil)
	defer pool.Close()

	gate := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	blocker := func() {
		started.Done()
		<-gate
	}

	h1, err := pool.Submit("a", blocker)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := pool.Submit("b", blocker)
	if err != nil {
		t.Fatal(err)
	}
	started.Wait()
	close(gate)
	h1.Join()
	h2.Join()

	mu.Lock()
	defer mu.Unlock()
	want := []string{"front-worker-1", "front-worker-2"}
	if len(spawned) != len(want) {
		t.Fatalf("spawner saw %v, want %v", spawned, want)
	}
	for i, name := range want {
		if spawned[i] != name {
			t.Fatalf("worker %d named %q, want %q", i, spawned[i], name)
		}
	}
}

func TestSubmitNilCallable(t *testing.T) {
	pool := NewUnboundedPool("nilfn", nil, nil)
	defer pool.Close()

	if _, err := pool.Submit("nil", nil); !errors.Is(err, ErrNilCallable) {
		t.Fatalf("expected ErrNilCallable, got %v", err)
	}
}

func TestHandleName(t *testing.T) {
	pool := NewUnboundedPool("named", nil, nil)
	defer pool.Close()

	h, err := pool.Submit("my-logical-thread", func() {})
	if err != nil {
		t.Fatal(err)
	}
	h.Join()
	if got := h.Name(); got != "my-logical-thread" {
		t.Fatalf("handle name: got %q", got)
	}
}
