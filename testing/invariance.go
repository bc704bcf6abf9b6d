package testing

import (
	"context"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/dataset"
	"github.com/stretchr/testify/require"
)

// MakeParallel splits a Table into fragments of at most fragmentSize rows, distributed
// across a single ParallelDataset
func MakeParallel(t require.TestingT, tbl hiero.Table, fragmentSize int) dataset.Dataset[hiero.Table] {
	ds, err := dataset.FromTable(tbl, fragmentSize, nil)
	require.Nil(t, err)
	return ds
}

// FragmentSizes returns the fragment sizes at which partition invariance is checked for a
// table of the given size: a single partition, one row per partition, and three partitions
func FragmentSizes(size int) []int {
	if size < 1 {
		return []int{1}
	}
	sizes := []int{size, 1}
	if third := size / 3; third > 1 {
		sizes = append(sizes, third)
	}
	return sizes
}

// RequirePartitionInvariant requires that a sketch produces the same result over tbl as a
// single leaf and over every split of tbl given by FragmentSizes. It returns that result.
func RequirePartitionInvariant[R any](t require.TestingT, tbl hiero.Table, s hiero.Sketch[hiero.Table, R]) R {
	ctx := context.Background()
	expected, err := dataset.Sketch[hiero.Table, R](ctx, dataset.MakeLocal(tbl), s)
	require.Nil(t, err)
	for _, size := range FragmentSizes(tbl.NumRows()) {
		actual, err := dataset.Sketch(ctx, MakeParallel(t, tbl, size), s)
		require.Nil(t, err)
		require.Equal(t, expected, actual, "fragment size %d", size)
	}
	return expected
}

// RequireMonoid requires that s.Zero() is an identity for s.Add on the given results, and
// that s.Add is associative and commutative over them
func RequireMonoid[T, R any](t require.TestingT, s hiero.Sketch[T, R], a R, b R, c R) {
	left, err := s.Add(s.Zero(), a)
	require.Nil(t, err)
	require.Equal(t, a, left)
	right, err := s.Add(a, s.Zero())
	require.Nil(t, err)
	require.Equal(t, a, right)

	ab, err := s.Add(a, b)
	require.Nil(t, err)
	ba, err := s.Add(b, a)
	require.Nil(t, err)
	require.Equal(t, ab, ba)

	abc1, err := s.Add(ab, c)
	require.Nil(t, err)
	bc, err := s.Add(b, c)
	require.Nil(t, err)
	abc2, err := s.Add(a, bc)
	require.Nil(t, err)
	require.Equal(t, abc1, abc2)
}
