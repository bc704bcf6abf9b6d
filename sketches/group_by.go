package sketches

import (
	"reflect"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
	"github.com/go-sif/hiero/table"
)

// GroupByWorkspace owns the workspace of an inner sketch, along with the bucket
// assigned to each member row of the Table it was built for
type GroupByWorkspace[W any] struct {
	Inner      W
	buckets    hiero.Buckets
	tableID    string
	membership hiero.Membership
	offset     int
	assignment []int32
	builds     int
}

// Buckets returns the bucketing function this workspace's assignment was computed with
func (w *GroupByWorkspace[W]) Buckets() hiero.Buckets {
	return w.buckets
}

func (w *GroupByWorkspace[W]) isValidFor(buckets hiero.Buckets, t hiero.Table) bool {
	if w.buckets == nil || w.tableID != t.ID() {
		return false
	}
	if !reflect.DeepEqual(w.buckets, buckets) {
		return false
	}
	return table.SameMembership(w.membership, t.Membership())
}

// GroupBySketch assigns each row of a Table to a bucket, and folds it into the result
// of an inner sketch for that bucket
type GroupBySketch[R, W any] struct {
	buckets hiero.Buckets
	inner   hiero.IncrementalTableSketch[R, W]
}

// GroupBy wraps an inner sketch in a group-by layer, adding one level of nesting to its result
func GroupBy[R, W any](buckets hiero.Buckets, inner hiero.IncrementalTableSketch[R, W]) *GroupBySketch[R, W] {
	return &GroupBySketch[R, W]{buckets: buckets, inner: inner}
}

// Zero returns one inner zero per bucket, plus one for the overflow
func (g *GroupBySketch[R, W]) Zero() *Groups[R] {
	slots := make([]R, g.buckets.NumBuckets()+1)
	for i := range slots {
		slots[i] = g.inner.Zero()
	}
	return &Groups[R]{Buckets: slots}
}

// Create groups the member rows of t
func (g *GroupBySketch[R, W]) Create(t hiero.Table) (*Groups[R], error) {
	return createOnce[*Groups[R], *GroupByWorkspace[W]](g, t)
}

// Add combines two Groups bucket by bucket
func (g *GroupBySketch[R, W]) Add(left *Groups[R], right *Groups[R]) (*Groups[R], error) {
	if len(left.Buckets) != len(right.Buckets) {
		return nil, errors.ShapeMismatchError{What: "group-by buckets", Expected: len(left.Buckets), Actual: len(right.Buckets)}
	}
	slots := make([]R, len(left.Buckets))
	for i := range slots {
		r, err := g.inner.Add(left.Buckets[i], right.Buckets[i])
		if err != nil {
			return nil, err
		}
		slots[i] = r
	}
	return &Groups[R]{Buckets: slots}, nil
}

// Initialize loads the columns of every nested level with a single call, then builds
// a workspace for every level
func (g *GroupBySketch[R, W]) Initialize(t hiero.Table) (*GroupByWorkspace[W], error) {
	if _, err := t.GetLoadedColumns(g.Columns()...); err != nil {
		return nil, err
	}
	inner, err := g.inner.Initialize(t)
	if err != nil {
		return nil, err
	}
	return &GroupByWorkspace[W]{Inner: inner}, nil
}

// CreateWithWorkspace groups the member rows of t, reusing bucket assignments where possible
func (g *GroupBySketch[R, W]) CreateWithWorkspace(t hiero.Table, workspace *GroupByWorkspace[W]) (*Groups[R], error) {
	return createIncrementally[*Groups[R], *GroupByWorkspace[W]](g, t, workspace)
}

// Columns returns the column read by this layer followed by those read by nested layers
func (g *GroupBySketch[R, W]) Columns() []string {
	return appendUnique([]string{g.buckets.Column()}, g.inner.Columns()...)
}

// Refresh rebuilds the bucket assignment of a workspace if it was computed with another
// bucketing function or for other rows, and refreshes nested workspaces
func (g *GroupBySketch[R, W]) Refresh(t hiero.Table, workspace *GroupByWorkspace[W]) error {
	if !workspace.isValidFor(g.buckets, t) {
		if err := g.assign(t, workspace); err != nil {
			return err
		}
	}
	return g.inner.Refresh(t, workspace.Inner)
}

// assign computes the bucket of every member row of t. Rows which are missing or out of
// range are assigned to the overflow bucket.
func (g *GroupBySketch[R, W]) assign(t hiero.Table, workspace *GroupByWorkspace[W]) error {
	col, err := t.GetColumn(g.buckets.Column())
	if err != nil {
		return err
	}
	numBuckets := g.buckets.NumBuckets()
	membership := t.Membership()
	offset := 0
	var assignment []int32
	if membership.Size() > 0 {
		rows := table.Bitmap(membership)
		offset = int(rows.Minimum())
		assignment = make([]int32, int(rows.Maximum())-offset+1)
	}
	err = membership.ForEachRow(func(row int) error {
		idx, err := g.buckets.IndexOf(col, row)
		if err != nil {
			return err
		}
		if idx >= numBuckets {
			return errors.BucketIndexError{Index: idx, NumBuckets: numBuckets}
		}
		if idx < 0 {
			idx = numBuckets
		}
		assignment[row-offset] = int32(idx)
		return nil
	})
	if err != nil {
		return err
	}
	workspace.buckets = g.buckets
	workspace.tableID = t.ID()
	workspace.membership = membership
	workspace.offset = offset
	workspace.assignment = assignment
	workspace.builds++
	return nil
}

// Increment folds a single row into the inner result of its bucket
func (g *GroupBySketch[R, W]) Increment(workspace *GroupByWorkspace[W], result *Groups[R], row int) error {
	i := row - workspace.offset
	if i < 0 || i >= len(workspace.assignment) {
		return errors.IndexOutOfBoundsError{Index: row, Size: workspace.offset + len(workspace.assignment)}
	}
	return g.inner.Increment(workspace.Inner, result.Buckets[workspace.assignment[i]], row)
}
