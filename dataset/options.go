package dataset

import (
	"fmt"
	"runtime"

	"github.com/go-kit/log"
)

// ExecutionOptions configure the execution of Maps and Sketches over a ParallelDataset
type ExecutionOptions struct {
	MaxParallelism int        // the maximum number of leaf operations which may run concurrently (defaults to the number of CPUs)
	Logger         log.Logger // logger for execution events (defaults to a no-op logger)
	Metrics        *Metrics   // collectors for execution metrics (optional, see NewMetrics)
}

// CloneExecutionOptions makes a copy of an ExecutionOptions
func CloneExecutionOptions(opts *ExecutionOptions) *ExecutionOptions {
	return &ExecutionOptions{
		MaxParallelism: opts.MaxParallelism,
		Logger:         opts.Logger,
		Metrics:        opts.Metrics,
	}
}

// Validate ensures that these options are usable
func (o *ExecutionOptions) Validate() error {
	if o.MaxParallelism < 0 {
		return fmt.Errorf("ExecutionOptions.MaxParallelism must not be negative, got %d", o.MaxParallelism)
	}
	return nil
}

func ensureDefaultExecutionOptionsValues(opts *ExecutionOptions) {
	if opts.MaxParallelism == 0 {
		opts.MaxParallelism = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
}
