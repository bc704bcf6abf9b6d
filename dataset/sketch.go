package dataset

import (
	"context"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/internal/util"
	"golang.org/x/sync/errgroup"
)

// Sketch computes s over every partition of ds and combines the partial results.
// A leaf's result is exactly s.Create of its partition; the results of a
// ParallelDataset's children are folded in child order, starting from s.Zero().
// The first failure cancels every partition which has not yet started, and no
// result is returned.
func Sketch[T, R any](ctx context.Context, ds Dataset[T], s hiero.Sketch[T, R]) (R, error) {
	return sketchDataset(ctx, hiero.SketchOperationType, ds, s)
}

func sketchDataset[T, R any](ctx context.Context, op hiero.OperationType, ds Dataset[T], s hiero.Sketch[T, R]) (R, error) {
	exec := executorOf[T](ds)
	result, err := sketchNode(ctx, exec, op, ds, s)
	if err != nil {
		exec.abort(op, ds.ID(), err)
		var zero R
		return zero, err
	}
	return result, nil
}

func sketchNode[T, R any](ctx context.Context, exec *executor, op hiero.OperationType, ds Dataset[T], s hiero.Sketch[T, R]) (result R, err error) {
	switch node := ds.(type) {
	case *LocalDataset[T]:
		err = exec.runLeaf(ctx, op, node.id, func() (err error) {
			result, err = util.SafeCreate(s, node.data)
			return
		})
		return
	case *ParallelDataset[T]:
		g, gctx := errgroup.WithContext(ctx)
		partials := make([]R, len(node.children))
		for i, child := range node.children {
			i, child := i, child
			g.Go(func() error {
				r, err := sketchNode(gctx, node.exec, op, child, s)
				if err != nil {
					return err
				}
				partials[i] = r
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return
		}
		result = s.Zero()
		for _, partial := range partials {
			result, err = util.SafeAdd(s, result, partial)
			if err != nil {
				return
			}
		}
		node.exec.stats.Combined(len(partials))
		return
	default:
		panic("unknown Dataset implementation")
	}
}

// Prepared is a partition paired with a workspace built for it
type Prepared[T, W any] struct {
	Data      T
	Workspace W
}

// Prepare initializes a workspace for every partition of ds, to be reused by SketchPrepared
func Prepare[T, R, W any](ctx context.Context, ds Dataset[T], s hiero.WorkspaceSketch[T, R, W]) (Dataset[*Prepared[T, W]], error) {
	return mapDataset(ctx, hiero.PrepareOperationType, ds, func(data T) (*Prepared[T, W], error) {
		return util.SafeCall("Prepare", func() (*Prepared[T, W], error) {
			workspace, err := s.Initialize(data)
			if err != nil {
				return nil, err
			}
			return &Prepared[T, W]{Data: data, Workspace: workspace}, nil
		})
	})
}

// SketchPrepared computes s over every partition of a prepared Dataset, reusing the workspace
// carried by each partition
func SketchPrepared[T, R, W any](ctx context.Context, ds Dataset[*Prepared[T, W]], s hiero.WorkspaceSketch[T, R, W]) (R, error) {
	return sketchDataset[*Prepared[T, W], R](ctx, hiero.SketchOperationType, ds, &preparedSketch[T, R, W]{inner: s})
}

// preparedSketch adapts a WorkspaceSketch to a Sketch over prepared partitions
type preparedSketch[T, R, W any] struct {
	inner hiero.WorkspaceSketch[T, R, W]
}

func (s *preparedSketch[T, R, W]) Zero() R {
	return s.inner.Zero()
}

func (s *preparedSketch[T, R, W]) Create(p *Prepared[T, W]) (R, error) {
	return s.inner.CreateWithWorkspace(p.Data, p.Workspace)
}

func (s *preparedSketch[T, R, W]) Add(left R, right R) (R, error) {
	return s.inner.Add(left, right)
}
