// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for concurrency module.

package concurrency

import "errors"

var (
	// ErrPoolClosed indicates the pool has been shut down
	ErrPoolClosed = errors.New("thread pool is closed")

	// ErrNilCallable indicates a nil function was submitted
	ErrNilCallable = errors.New("nil callable submitted")
)
