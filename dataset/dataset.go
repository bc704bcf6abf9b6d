// Package dataset implements distributed Datasets: immutable trees whose leaves hold
// partitions of data, over which Maps and Sketches are executed concurrently.
package dataset

import (
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
	"github.com/go-sif/hiero/internal/util"
)

// Dataset is either a LocalDataset, holding a single partition, or a ParallelDataset,
// holding an ordered, non-empty list of child Datasets. The shape of a Dataset never
// changes; every operation over a Dataset produces a new tree of identical shape.
type Dataset[T any] interface {
	ID() string     // ID returns a unique identifier for this Dataset
	IsLocal() bool  // IsLocal returns true iff this Dataset is a leaf
	NumLeaves() int // NumLeaves returns the number of leaves (partitions) in this Dataset
	sealedDataset()
}

// LocalDataset is a leaf of a Dataset tree, holding a single partition
type LocalDataset[T any] struct {
	id   string
	data T
}

// MakeLocal wraps a single partition as a leaf Dataset
func MakeLocal[T any](data T) *LocalDataset[T] {
	return &LocalDataset[T]{id: util.NewID(), data: data}
}

// ID returns a unique identifier for this Dataset
func (d *LocalDataset[T]) ID() string {
	return d.id
}

// IsLocal returns true
func (d *LocalDataset[T]) IsLocal() bool {
	return true
}

// NumLeaves returns 1
func (d *LocalDataset[T]) NumLeaves() int {
	return 1
}

// Data returns the partition held by this leaf
func (d *LocalDataset[T]) Data() T {
	return d.data
}

func (d *LocalDataset[T]) sealedDataset() {}

// ParallelDataset is an interior node of a Dataset tree. Operations over its children
// run concurrently, according to its ExecutionOptions.
type ParallelDataset[T any] struct {
	id       string
	children []Dataset[T]
	exec     *executor
}

// MakeParallel creates an interior Dataset node over a non-empty, ordered list of children.
// A nil opts uses default ExecutionOptions.
func MakeParallel[T any](children []Dataset[T], opts *ExecutionOptions) (*ParallelDataset[T], error) {
	if len(children) == 0 {
		return nil, errors.EmptyDatasetError{}
	}
	exec, err := newExecutor(opts)
	if err != nil {
		return nil, err
	}
	return newParallel(children, exec), nil
}

func newParallel[T any](children []Dataset[T], exec *executor) *ParallelDataset[T] {
	kids := make([]Dataset[T], len(children))
	copy(kids, children)
	return &ParallelDataset[T]{id: util.NewID(), children: kids, exec: exec}
}

// ID returns a unique identifier for this Dataset
func (d *ParallelDataset[T]) ID() string {
	return d.id
}

// IsLocal returns false
func (d *ParallelDataset[T]) IsLocal() bool {
	return false
}

// NumLeaves returns the number of leaves beneath this node
func (d *ParallelDataset[T]) NumLeaves() int {
	total := 0
	for _, child := range d.children {
		total += child.NumLeaves()
	}
	return total
}

// Children returns the children of this node, in order
func (d *ParallelDataset[T]) Children() []Dataset[T] {
	kids := make([]Dataset[T], len(d.children))
	copy(kids, d.children)
	return kids
}

// Options returns the ExecutionOptions governing operations over this node
func (d *ParallelDataset[T]) Options() ExecutionOptions {
	return *d.exec.opts
}

// Statistics returns statistics about the leaf operations executed through this node.
// Statistics are shared by every node derived from this one.
func (d *ParallelDataset[T]) Statistics() hiero.RuntimeStatistics {
	return d.exec.stats
}

func (d *ParallelDataset[T]) sealedDataset() {}

// Leaves returns the partitions held by a Dataset, in depth-first order
func Leaves[T any](ds Dataset[T]) []T {
	result := make([]T, 0, ds.NumLeaves())
	var visit func(d Dataset[T])
	visit = func(d Dataset[T]) {
		switch node := d.(type) {
		case *LocalDataset[T]:
			result = append(result, node.data)
		case *ParallelDataset[T]:
			for _, child := range node.children {
				visit(child)
			}
		}
	}
	visit(ds)
	return result
}

// SameShape returns true iff two Datasets have identical tree structure
func SameShape[L, R any](left Dataset[L], right Dataset[R]) bool {
	return checkShape[L, R](left, right) == nil
}

func checkShape[L, R any](left Dataset[L], right Dataset[R]) error {
	switch l := left.(type) {
	case *LocalDataset[L]:
		if r, ok := right.(*ParallelDataset[R]); ok {
			return errors.ShapeMismatchError{What: "dataset children (a local node has none)", Expected: 0, Actual: len(r.children)}
		}
		return nil
	case *ParallelDataset[L]:
		r, ok := right.(*ParallelDataset[R])
		if !ok {
			return errors.ShapeMismatchError{What: "dataset children (a local node has none)", Expected: len(l.children), Actual: 0}
		}
		if len(l.children) != len(r.children) {
			return errors.ShapeMismatchError{What: "dataset children", Expected: len(l.children), Actual: len(r.children)}
		}
		for i := range l.children {
			if err := checkShape[L, R](l.children[i], r.children[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
