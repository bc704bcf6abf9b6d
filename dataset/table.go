package dataset

import (
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/table"
)

// FromTable splits a Table into fragments of at most fragmentSize rows, and
// distributes them as the leaves of a single ParallelDataset
func FromTable(t hiero.Table, fragmentSize int, opts *ExecutionOptions) (*ParallelDataset[hiero.Table], error) {
	fragments, err := table.Split(t, fragmentSize)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		// an empty table still forms a single (empty) partition
		fragments = []hiero.Table{t}
	}
	children := make([]Dataset[hiero.Table], len(fragments))
	for i, f := range fragments {
		children[i] = MakeLocal(f)
	}
	return MakeParallel(children, opts)
}
