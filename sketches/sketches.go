// Package sketches provides Sketches over Tables: counts, sums, compositions, and the
// group-by layer from which N-dimensional histograms are built.
package sketches

import (
	"github.com/go-sif/hiero"
)

// EmptyWorkspace is the workspace of sketches which need no per-partition state
type EmptyWorkspace struct{}

// createIncrementally readies a workspace and folds every member row of t into a fresh result
func createIncrementally[R, W any](s hiero.IncrementalTableSketch[R, W], t hiero.Table, workspace W) (R, error) {
	var zero R
	if err := s.Refresh(t, workspace); err != nil {
		return zero, err
	}
	result := s.Zero()
	err := t.Membership().ForEachRow(func(row int) error {
		return s.Increment(workspace, result, row)
	})
	if err != nil {
		return zero, err
	}
	return result, nil
}

// createOnce builds a throwaway workspace for t and computes a result with it
func createOnce[R, W any](s hiero.IncrementalTableSketch[R, W], t hiero.Table) (R, error) {
	workspace, err := s.Initialize(t)
	if err != nil {
		var zero R
		return zero, err
	}
	return createIncrementally(s, t, workspace)
}

// toValue converts a result into a self-describing value, if it knows how
func toValue(v interface{}) interface{} {
	if valuer, ok := v.(hiero.Valuer); ok {
		return valuer.ToValue()
	}
	return v
}
