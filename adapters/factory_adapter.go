// File: adapters/factory_adapter.go
// Package adapters provides glue between core pool types and api contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FactoryAdapter implements the api.ThreadFactory interface by delegating
// to a core concurrency.UnboundedPool. It is the caller-facing submission
// surface; the pool itself stays an implementation detail.

package adapters

import (
	"github.com/momentics/hioload-threads/api"
	"github.com/momentics/hioload-threads/core/concurrency"
)

// FactoryAdapter wraps an UnboundedPool to satisfy the api.ThreadFactory contract.
type FactoryAdapter struct {
	pool *concurrency.UnboundedPool
}

var _ api.ThreadFactory = (*FactoryAdapter)(nil)

// NewFactoryAdapter constructs an api.ThreadFactory over pool.
func NewFactoryAdapter(pool *concurrency.UnboundedPool) *FactoryAdapter {
	return &FactoryAdapter{pool: pool}
}

// StartThread schedules fn as a new logical thread in the backing pool.
func (fa *FactoryAdapter) StartThread(name string, fn func()) (api.Thread, error) {
	return fa.pool.Submit(name, fn)
}

// Size returns the backing pool's current physical worker count.
func (fa *FactoryAdapter) Size() int {
	return fa.pool.Size()
}
