// File: api/signal.go
// Package api defines the one-shot completion signal contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Signal is a one-shot, thread-safe wait/notify primitive. The pool fires
// Notify exactly once per work item, after the item's body has returned,
// whether it returned normally or panicked.
type Signal interface {
	// Notify marks the signal as fired and releases all waiters. Calling
	// Notify more than once is safe; only the first call has effect.
	Notify()

	// Wait blocks until Notify has been called.
	Wait()
}
