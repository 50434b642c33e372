// File: core/concurrency/workqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pending-work FIFO plus pool bookkeeping (idle-worker count, shutdown
// flag) behind a single mutex and condition variable. Critical sections
// are O(1); the lock is never held while a callable executes.

package concurrency

import (
	"sync"

	"github.com/eapache/queue"
)

// workItem pairs a callable with its completion signal. The queue owns an
// item until a worker dequeues it; the worker owns it for the duration of
// execution.
type workItem struct {
	fn   func()
	done *Notification
}

// itemPool recycles workItem shells between logical threads. Handles keep
// only the Notification, so a recycled shell never aliases live state.
var itemPool = sync.Pool{
	New: func() any { return new(workItem) },
}

func newWorkItem(fn func()) *workItem {
	item := itemPool.Get().(*workItem)
	item.fn = fn
	item.done = NewNotification()
	return item
}

func releaseWorkItem(item *workItem) {
	item.fn = nil
	item.done = nil
	itemPool.Put(item)
}

// workQueue holds pending work items in submission order together with the
// idle-worker count and the monotonic cancelled flag. All fields are
// guarded by mu; cond wakes workers blocked in dequeueBlocking.
type workQueue struct {
	mu        sync.Mutex
	cond      *sync.Cond
	items     *queue.Queue
	numIdle   int
	cancelled bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{items: queue.New()}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// submit hands item to an idle worker by appending it to the FIFO and
// waking exactly one waiter. When no worker is idle it leaves the item
// with the caller and reports grow=true: the caller must spawn a fresh
// worker that executes the item directly, bypassing the queue.
func (q *workQueue) submit(item *workItem) (grow bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cancelled {
		return false, ErrPoolClosed
	}
	if q.numIdle == 0 {
		return true, nil
	}
	q.items.Add(item)
	q.cond.Signal()
	return false, nil
}

// dequeueBlocking blocks until an item is available or the queue has been
// cancelled and fully drained. Draining takes priority over exiting: a
// cancelled queue keeps handing out items until empty. The second return
// value is false only when the calling worker must terminate.
func (q *workQueue) dequeueBlocking() (*workItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.numIdle++
	for q.items.Length() == 0 && !q.cancelled {
		q.cond.Wait()
	}
	q.numIdle--
	if q.items.Length() == 0 {
		return nil, false
	}
	return q.items.Remove().(*workItem), true
}

// cancel sets the shutdown flag and wakes every waiting worker. The flag
// is monotonic: once set it is never cleared.
func (q *workQueue) cancel() {
	q.mu.Lock()
	q.cancelled = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// pending returns a snapshot of the queued-item count.
func (q *workQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}

// idle returns a snapshot of the idle-worker count.
func (q *workQueue) idle() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.numIdle
}
