// File: core/concurrency/pool.go
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// UnboundedPool multiplexes logical threads onto pooled physical workers,
// growing the worker set whenever a submission finds none idle. Growth is
// monotonic: workers are never individually terminated before Close.
//

package concurrency

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-threads/api"
)

// UnboundedPool owns a growth-only collection of physical workers and the
// FIFO of pending work items they drain. Because every submission that
// finds zero idle workers creates a fresh worker, a logical thread that
// blocks waiting on another logical thread is always guaranteed a free
// worker to make progress; the pool cannot deadlock itself. The cost is
// unbounded worker growth under unbounded concurrent blocking.
type UnboundedPool struct {
	name    string
	spawner api.Spawner
	obs     Observer
	queue   *workQueue
	closed  atomic.Bool
	seq     atomic.Uint64

	// registryMu guards workers. It is touched only on spawn and on
	// teardown join, never while a worker waits on the queue's condition
	// variable, and is independent of the queue lock.
	registryMu sync.Mutex
	workers    []api.Thread
}

// NewUnboundedPool creates an empty pool. Physical workers take their
// names from name. A nil spawner falls back to plain goroutines; a nil
// observer disables instrumentation.
func NewUnboundedPool(name string, spawner api.Spawner, obs Observer) *UnboundedPool {
	if spawner == nil {
		spawner = NewGoSpawner(false)
	}
	return &UnboundedPool{
		name:    name,
		spawner: spawner,
		obs:     obs,
		queue:   newWorkQueue(),
	}
}

// Submit schedules fn as a new logical thread and returns its joinable
// handle. If at least one worker is idle the item is queued FIFO and one
// idle worker is woken; otherwise a fresh worker is spawned whose first
// action is to execute the item directly, bypassing the queue. Spawn
// failures are returned synchronously and the item is not retried.
func (p *UnboundedPool) Submit(name string, fn func()) (api.Thread, error) {
	if fn == nil {
		return nil, ErrNilCallable
	}
	item := newWorkItem(fn)
	done := item.done
	grow, err := p.queue.submit(item)
	if err != nil {
		releaseWorkItem(item)
		return nil, err
	}
	if grow {
		if err := p.spawnWorker(item); err != nil {
			releaseWorkItem(item)
			return nil, err
		}
	}
	if p.obs != nil {
		p.obs.ThreadSubmitted(name)
		p.obs.QueueState(p.queue.pending(), p.queue.idle())
	}
	return &logicalThread{name: name, done: done}, nil
}

// Size returns the current number of physical workers. The value is a
// snapshot and may race with concurrent spawns.
func (p *UnboundedPool) Size() int {
	p.registryMu.Lock()
	defer p.registryMu.Unlock()
	return len(p.workers)
}

// Stats is a point-in-time snapshot of pool state.
type Stats struct {
	Workers int
	Idle    int
	Pending int
}

// Stats returns a snapshot of worker, idle and pending counts. The three
// fields are read independently and need not be mutually consistent.
func (p *UnboundedPool) Stats() Stats {
	return Stats{
		Workers: p.Size(),
		Idle:    p.queue.idle(),
		Pending: p.queue.pending(),
	}
}

// Close sets the shutdown flag, wakes all idle workers, then waits for
// every owned worker to drain the remaining queue and exit. Size reports
// zero once Close returns. Submitting during or after Close is a contract
// violation; it fails with ErrPoolClosed on a best-effort basis. Close is
// idempotent.
func (p *UnboundedPool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	p.queue.cancel()
	p.registryMu.Lock()
	defer p.registryMu.Unlock()
	for _, w := range p.workers {
		w.Join()
	}
	p.workers = p.workers[:0]
}

// spawnWorker creates a new physical worker whose first action is to run
// initial, then fall into the generic worker loop.
func (p *UnboundedPool) spawnWorker(initial *workItem) error {
	name := fmt.Sprintf("%s-worker-%d", p.name, p.seq.Add(1))
	p.registryMu.Lock()
	t, err := p.spawner.SpawnThread(name, func() { p.workerLoop(initial) })
	if err != nil {
		p.registryMu.Unlock()
		return fmt.Errorf("spawn %s: %w", name, err)
	}
	p.workers = append(p.workers, t)
	total := len(p.workers)
	p.registryMu.Unlock()
	if p.obs != nil {
		p.obs.WorkerSpawned(total)
	}
	return nil
}

// workerLoop is the body run by every physical worker: Idle -> Running ->
// Idle -> ... -> Terminated. A worker spawned for a direct item starts
// Running; it never re-enters Running after dequeueBlocking reports
// termination.
func (p *UnboundedPool) workerLoop(initial *workItem) {
	if initial != nil {
		p.runItem(initial)
	}
	for {
		item, ok := p.queue.dequeueBlocking()
		if !ok {
			return
		}
		p.runItem(item)
	}
}

// runItem executes one logical thread body. The completion signal fires
// via defer so a failing callable still releases its joiners; a panic
// itself is never recovered, inspected or suppressed by the pool.
func (p *UnboundedPool) runItem(item *workItem) {
	fn, done := item.fn, item.done
	releaseWorkItem(item)
	start := time.Now()
	defer func() {
		done.Notify()
		if p.obs != nil {
			p.obs.ThreadCompleted(time.Since(start))
			p.obs.QueueState(p.queue.pending(), p.queue.idle())
		}
	}()
	fn()
}

// logicalThread is the caller-facing handle. It holds only the completion
// signal, never pool internals or a reference to the worker executing it.
type logicalThread struct {
	name string
	done *Notification
}

func (t *logicalThread) Name() string { return t.name }
func (t *logicalThread) Join()        { t.done.Wait() }
