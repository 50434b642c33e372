// File: core/concurrency/observer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Telemetry hook points for pool instrumentation.

package concurrency

import "time"

// Observer receives lifecycle callbacks from an UnboundedPool. Callbacks
// run outside the pool's locks and may fire concurrently from many
// workers; implementations must be safe for concurrent use. A nil
// observer disables instrumentation.
type Observer interface {
	// ThreadSubmitted fires once per accepted submission.
	ThreadSubmitted(name string)

	// ThreadCompleted fires after a logical thread's body has returned,
	// with its execution duration.
	ThreadCompleted(d time.Duration)

	// WorkerSpawned fires after a new physical worker has been created,
	// with the resulting worker count.
	WorkerSpawned(total int)

	// QueueState reports pending-item and idle-worker snapshots taken
	// around queue transitions.
	QueueState(pending, idle int)
}
