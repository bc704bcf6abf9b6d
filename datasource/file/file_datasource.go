package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/dataset"
	"github.com/go-sif/hiero/table"
)

// Opener creates a FileLoader for a single path
type Opener func(path string) (hiero.FileLoader, error)

// Find produces a ParallelDataset with one FileLoader leaf per file matching glob, in lexical order
func Find(glob string, open Opener, opts *dataset.ExecutionOptions) (*dataset.ParallelDataset[hiero.FileLoader], error) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	sort.Strings(matches)
	children := make([]dataset.Dataset[hiero.FileLoader], len(matches))
	for i, path := range matches {
		loader, err := open(path)
		if err != nil {
			return nil, fmt.Errorf("Unable to open %s: %w", path, err)
		}
		children[i] = dataset.MakeLocal(loader)
	}
	return dataset.MakeParallel(children, opts)
}

// LoadTable is a Map which turns each FileLoader into a Table
type LoadTable struct {
	Lazy bool // if true, columns are loaded on first use rather than up front
}

// Apply loads a Table from a FileLoader
func (m *LoadTable) Apply(loader hiero.FileLoader) (hiero.Table, error) {
	return table.Load(loader, m.Lazy)
}

// Load is a convenience which finds files matching glob and maps each onto a Table
func Load(ctx context.Context, glob string, open Opener, lazy bool, opts *dataset.ExecutionOptions) (dataset.Dataset[hiero.Table], error) {
	loaders, err := Find(glob, open, opts)
	if err != nil {
		return nil, err
	}
	return dataset.Map[hiero.FileLoader, hiero.Table](ctx, loaders, &LoadTable{Lazy: lazy})
}
