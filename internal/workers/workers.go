package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker concurrently. The first worker to return, with or
// without an error, cancels the others; Run waits for all of them and
// returns the first error.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, worker := range w.workers {
		g.Go(func() error {
			defer cancel()
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}
