// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and
// stops several workers together, a periodic Ticker and a per-key
// Debouncer.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and
// keep running until ctx is cancelled or Stop is called. Stop blocks until
// the worker's goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
