// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-specific OS-thread helpers for hioload-threads. Provides
// best-effort thread naming for workers that lock their goroutine to an
// OS thread, partitioned per platform via build tags. Unsupported
// platforms compile to no-ops.
package concurrency
