// Package workers runs the long-lived background parts of the signer (the
// feed server, the UI program) side by side and stops them together.
package workers

import "context"

// Worker is a long-running component. Run blocks until ctx is cancelled or
// the worker fails, and returns nil on a clean stop.
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

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
