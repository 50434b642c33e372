// File: core/concurrency/notification.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot completion signal backing logical thread handles.

package concurrency

import (
	"sync"

	"github.com/momentics/hioload-threads/api"
)

// Notification is a one-shot, thread-safe wait/notify primitive. The zero
// value is not usable; create instances with NewNotification.
type Notification struct {
	once sync.Once
	done chan struct{}
}

var _ api.Signal = (*Notification)(nil)

// NewNotification creates an unfired notification.
func NewNotification() *Notification {
	return &Notification{done: make(chan struct{})}
}

// Notify fires the notification and releases all current and future
// waiters. Repeated calls are no-ops.
func (n *Notification) Notify() {
	n.once.Do(func() { close(n.done) })
}

// Wait blocks until Notify has been called.
func (n *Notification) Wait() {
	<-n.done
}

// HasBeenNotified reports whether Notify has been called, without blocking.
func (n *Notification) HasBeenNotified() bool {
	select {
	case <-n.done:
		return true
	default:
		return false
	}
}

// Done exposes the underlying channel so callers can compose their own
// timeouts with select.
func (n *Notification) Done() <-chan struct{} {
	return n.done
}
