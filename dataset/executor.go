package dataset

import (
	"context"
	"time"

	"github.com/go-kit/log/level"
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/internal/stats"
	"golang.org/x/sync/semaphore"
)

// executor bounds and instruments the leaf operations run beneath a ParallelDataset.
// It is shared by every node derived from the node which created it.
type executor struct {
	opts  *ExecutionOptions
	slots *semaphore.Weighted
	stats *stats.RunStatistics
}

func newExecutor(opts *ExecutionOptions) (*executor, error) {
	if opts == nil {
		opts = &ExecutionOptions{}
	} else {
		opts = CloneExecutionOptions(opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ensureDefaultExecutionOptionsValues(opts)
	return &executor{
		opts:  opts,
		slots: semaphore.NewWeighted(int64(opts.MaxParallelism)),
		stats: &stats.RunStatistics{},
	}, nil
}

// defaultExecutor is used for operations over a bare LocalDataset
func defaultExecutor() *executor {
	exec, _ := newExecutor(nil)
	return exec
}

// runLeaf runs fn against a single partition once a slot is available. If ctx
// is cancelled before a slot is acquired, fn is never run.
func (e *executor) runLeaf(ctx context.Context, op hiero.OperationType, leafID string, fn func() error) error {
	if err := e.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.slots.Release(1)
	if err := ctx.Err(); err != nil {
		return err
	}
	start := e.stats.StartLeaf()
	err := fn()
	e.stats.EndLeaf(start, err)
	e.opts.Metrics.observeLeaf(op, time.Since(start), err)
	if err != nil {
		level.Debug(e.opts.Logger).Log("msg", "partition operation failed", "operation", op, "leaf", leafID, "err", err)
	}
	return err
}

// abort records the failure of an entire operation
func (e *executor) abort(op hiero.OperationType, datasetID string, err error) {
	e.opts.Metrics.observeAbort(op)
	level.Warn(e.opts.Logger).Log("msg", "dataset operation aborted", "operation", op, "dataset", datasetID, "err", err)
}

func executorOf[T any](ds Dataset[T]) *executor {
	if p, ok := ds.(*ParallelDataset[T]); ok {
		return p.exec
	}
	return defaultExecutor()
}
