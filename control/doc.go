// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime configuration, metrics, and debug introspection layer for
// hioload-threads pools.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Metrics telemetry: snapshot registry and Prometheus instruments
//   - State export, debug hooks, and probe registration
package control
