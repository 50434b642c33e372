// File: core/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded logical-thread pool for hioload-threads. Multiplexes an
// unbounded number of caller-visible logical threads onto a growth-only
// set of long-lived physical workers, spawning a new worker whenever a
// submission finds none idle so that blocking chains among logical
// threads cannot deadlock the pool.
//
// Two independent locks, never nested: the work-queue lock guards the
// pending-item FIFO, the idle-worker count and the shutdown flag; the
// registry lock guards the slice of owned worker handles and is touched
// only on spawn and on teardown join.
package concurrency
