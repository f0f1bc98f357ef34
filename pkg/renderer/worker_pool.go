package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs band tasks on a bounded number of goroutines. The first
// task error cancels the pool's context and is returned by Wait.
type WorkerPool struct {
	group      *errgroup.Group
	ctx        context.Context
	numWorkers int
}

// NewWorkerPool creates a pool with the specified number of workers
// (0 = use CPU count)
func NewWorkerPool(ctx context.Context, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(numWorkers)

	return &WorkerPool{
		group:      group,
		ctx:        groupCtx,
		numWorkers: numWorkers,
	}
}

// Submit queues a task, blocking while all workers are busy
func (wp *WorkerPool) Submit(task func(ctx context.Context) error) {
	wp.group.Go(func() error {
		return task(wp.ctx)
	})
}

// Wait blocks until every submitted task has returned
func (wp *WorkerPool) Wait() error {
	return wp.group.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
