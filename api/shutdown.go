// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies teardown logic across components.
type GracefulShutdown interface {
	// Shutdown stops the component, draining in-flight work and releasing
	// owned resources. Returns an error on failure.
	Shutdown() error
}
