package dataset

import (
	"context"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/internal/util"
	"golang.org/x/sync/errgroup"
)

// Map applies m to every partition of ds, producing a Dataset of identical shape.
// Sibling partitions are transformed concurrently. The first failure cancels every
// partition which has not yet started, and no Dataset is returned.
func Map[T, S any](ctx context.Context, ds Dataset[T], m hiero.Map[T, S]) (Dataset[S], error) {
	return mapDataset(ctx, hiero.MapOperationType, ds, func(data T) (S, error) {
		return util.SafeApply(m, data)
	})
}

func mapDataset[T, S any](ctx context.Context, op hiero.OperationType, ds Dataset[T], fn func(T) (S, error)) (Dataset[S], error) {
	exec := executorOf[T](ds)
	result, err := mapNode(ctx, exec, op, ds, fn)
	if err != nil {
		exec.abort(op, ds.ID(), err)
		return nil, err
	}
	return result, nil
}

func mapNode[T, S any](ctx context.Context, exec *executor, op hiero.OperationType, ds Dataset[T], fn func(T) (S, error)) (Dataset[S], error) {
	switch node := ds.(type) {
	case *LocalDataset[T]:
		var result S
		err := exec.runLeaf(ctx, op, node.id, func() (err error) {
			result, err = fn(node.data)
			return
		})
		if err != nil {
			return nil, err
		}
		return MakeLocal(result), nil
	case *ParallelDataset[T]:
		g, gctx := errgroup.WithContext(ctx)
		results := make([]Dataset[S], len(node.children))
		for i, child := range node.children {
			i, child := i, child
			g.Go(func() error {
				r, err := mapNode(gctx, node.exec, op, child, fn)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return &ParallelDataset[S]{id: util.NewID(), children: results, exec: node.exec}, nil
	default:
		panic("unknown Dataset implementation")
	}
}

// Pair holds the partitions at the same position of two zipped Datasets
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Zip pairs the partitions of two identically-shaped Datasets, position by position.
// The result inherits the ExecutionOptions of left.
func Zip[L, R any](left Dataset[L], right Dataset[R]) (Dataset[Pair[L, R]], error) {
	if err := checkShape[L, R](left, right); err != nil {
		return nil, err
	}
	return zipNode[L, R](left, right), nil
}

func zipNode[L, R any](left Dataset[L], right Dataset[R]) Dataset[Pair[L, R]] {
	switch l := left.(type) {
	case *LocalDataset[L]:
		r := right.(*LocalDataset[R])
		return MakeLocal(Pair[L, R]{Left: l.data, Right: r.data})
	case *ParallelDataset[L]:
		r := right.(*ParallelDataset[R])
		children := make([]Dataset[Pair[L, R]], len(l.children))
		for i := range l.children {
			children[i] = zipNode[L, R](l.children[i], r.children[i])
		}
		return &ParallelDataset[Pair[L, R]]{id: util.NewID(), children: children, exec: l.exec}
	default:
		panic("unknown Dataset implementation")
	}
}
