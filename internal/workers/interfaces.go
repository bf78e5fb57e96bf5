// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers together until the shared context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to block until ctx is done or the worker fails. A worker
// that returns a non-nil error stops the whole aggregate.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
