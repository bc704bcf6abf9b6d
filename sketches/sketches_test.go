package sketches

import (
	"context"
	"testing"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
	"github.com/go-sif/hiero/dataset"
	"github.com/go-sif/hiero/datasource/memory"
	"github.com/go-sif/hiero/errors"
	"github.com/go-sif/hiero/table"
	hierotest "github.com/go-sif/hiero/testing"
	"github.com/stretchr/testify/require"
)

func ageBuckets(t *testing.T) *ExplicitBuckets {
	b, err := NewExplicitBuckets("Age", 0, 15, 25, 35)
	require.Nil(t, err)
	return b
}

func nameBuckets(t *testing.T) *StringBuckets {
	b, err := NewStringBuckets("Name", "John", "Mike", "Tom")
	require.Nil(t, err)
	return b
}

func counts(g *Groups[*CountResult]) []int {
	result := make([]int, len(g.Buckets))
	for i, c := range g.Buckets {
		result[i] = c.Count
	}
	return result
}

func TestHistogramOverSplitTable(t *testing.T) {
	tbl := hierotest.SmallTable()
	ds := hierotest.MakeParallel(t, tbl, 2)
	require.Equal(t, 2, ds.NumLeaves())
	sizes := make([]int, 0)
	for _, f := range dataset.Leaves[hiero.Table](ds) {
		sizes = append(sizes, f.NumRows())
	}
	require.Equal(t, []int{2, 1}, sizes)

	h := Histogram(ageBuckets(t))
	result, err := dataset.Sketch[hiero.Table, *Groups[*CountResult]](context.Background(), ds, h)
	require.Nil(t, err)
	// Tom, Mike, John, then no overflow
	require.Equal(t, []int{1, 1, 1, 0}, counts(result))

	whole, err := h.Create(tbl)
	require.Nil(t, err)
	require.Equal(t, whole, result)
}

func TestGroupByNameSumAge(t *testing.T) {
	s := GroupBy[*SumResult, *ColumnWorkspace](nameBuckets(t), Sum("Age"))
	result := hierotest.RequirePartitionInvariant[*Groups[*SumResult]](t, hierotest.SmallTable(), s)
	mike := result.PerBucket(1)
	require.Equal(t, 1, mike.Count)
	require.Equal(t, 20.0, mike.Sum)

	total := 0
	for _, r := range result.Buckets {
		total += r.Count + r.Missing
	}
	require.Equal(t, 3, total)
}

func TestHistogramPartitionInvariance(t *testing.T) {
	tbl := hierotest.IntTable(2, 100, 2, 50)
	b0, err := NewDoubleBuckets("Column0", 0, 40, 7)
	require.Nil(t, err)
	b1, err := NewExplicitBuckets("Column1", 5, 10, 20, 30)
	require.Nil(t, err)

	h := hierotest.RequirePartitionInvariant[*Groups[*CountResult]](t, tbl, Histogram(b0))
	total := 0
	for _, c := range counts(h) {
		total += c
	}
	require.Equal(t, 100, total)

	h2 := hierotest.RequirePartitionInvariant[*Groups[*Groups[*CountResult]]](t, tbl, Histogram2D(b0, b1))
	require.Equal(t, 3, h2.NumBuckets())
	require.Equal(t, 7, h2.PerBucket(0).NumBuckets())
	total = 0
	for _, inner := range h2.Buckets {
		for _, c := range counts(inner) {
			total += c
		}
	}
	require.Equal(t, 100, total)
}

func TestHashHistogramOverCategories(t *testing.T) {
	tbl := hierotest.CategoryTable(3, 90, "red", "green", "blue", "cyan")
	b, err := NewHashBuckets("Category", 3)
	require.Nil(t, err)
	h := hierotest.RequirePartitionInvariant[*Groups[*CountResult]](t, tbl, Histogram(b))
	require.Equal(t, 0, h.Overflow().Count)
	total := 0
	for _, c := range counts(h) {
		total += c
	}
	require.Equal(t, 90, total)
}

func TestHistogram4DNesting(t *testing.T) {
	tbl := hierotest.IntTable(2, 60, 4, 10)
	bs := make([]hiero.Buckets, 4)
	for i := range bs {
		b, err := NewDoubleBuckets(tbl.Schema().ColumnNames()[i], 0, 9, i+2)
		require.Nil(t, err)
		bs[i] = b
	}
	h := Histogram4D(bs[0], bs[1], bs[2], bs[3])
	require.Equal(t, []string{"Column3", "Column2", "Column1", "Column0"}, h.Columns())
	result := hierotest.RequirePartitionInvariant[*Groups[*Groups[*Groups[*Groups[*CountResult]]]]](t, tbl, h)
	// the outermost level is indexed by the last bucketing function
	require.Equal(t, 5, result.NumBuckets())
	require.Equal(t, 4, result.PerBucket(0).NumBuckets())
	require.Equal(t, 3, result.PerBucket(0).PerBucket(0).NumBuckets())
	require.Equal(t, 2, result.PerBucket(0).PerBucket(0).PerBucket(0).NumBuckets())

	total := 0
	for _, l3 := range result.Buckets {
		for _, l2 := range l3.Buckets {
			for _, l1 := range l2.Buckets {
				for _, c := range l1.Buckets {
					total += c.Count
				}
			}
		}
	}
	require.Equal(t, 60, total)
}

func TestMissingValuesOverflow(t *testing.T) {
	tbl := hierotest.MissingIntTable(2, 30, 1)
	name := tbl.Schema().ColumnNames()[0]
	b, err := NewDoubleBuckets(name, 0, 29, 3)
	require.Nil(t, err)
	result := hierotest.RequirePartitionInvariant[*Groups[*CountResult]](t, tbl, Histogram(b))
	col, err := tbl.GetColumn(name)
	require.Nil(t, err)
	missing, err := column.MissingCount(col)
	require.Nil(t, err)
	require.True(t, missing > 0)
	require.Equal(t, missing, result.Overflow().Count)
}

func TestGroupByMonoidLaws(t *testing.T) {
	s := GroupBy[*SumResult, *ColumnWorkspace](nameBuckets(t), Sum("Age"))
	tbl := hierotest.TestRepTable()
	fragments, err := table.Split(tbl, 5)
	require.Nil(t, err)
	results := make([]*Groups[*SumResult], len(fragments))
	for i, f := range fragments {
		results[i], err = s.Create(f)
		require.Nil(t, err)
	}
	hierotest.RequireMonoid[hiero.Table, *Groups[*SumResult]](t, s, results[0], results[1], results[2])
	hierotest.RequireMonoid[hiero.Table, *CountResult](t, Count(), &CountResult{Count: 1}, &CountResult{Count: 5}, &CountResult{Count: 7})
}

func TestAddDoesNotMutate(t *testing.T) {
	s := Histogram(ageBuckets(t))
	a, err := s.Create(hierotest.SmallTable())
	require.Nil(t, err)
	b, err := s.Create(hierotest.TestTable())
	require.Nil(t, err)
	before := counts(a)
	_, err = s.Add(a, b)
	require.Nil(t, err)
	require.Equal(t, before, counts(a))
}

func TestAddShapeMismatch(t *testing.T) {
	s := Histogram(ageBuckets(t))
	_, err := s.Add(s.Zero(), &Groups[*CountResult]{Buckets: []*CountResult{{}, {}}})
	_, ok := err.(errors.ShapeMismatchError)
	require.True(t, ok)
}

// brokenBuckets reports bucket indices beyond its own bucket count
type brokenBuckets struct{}

func (b brokenBuckets) Column() string {
	return "Age"
}

func (b brokenBuckets) NumBuckets() int {
	return 2
}

func (b brokenBuckets) IndexOf(col hiero.Column, row int) (int, error) {
	return 2, nil
}

func TestBucketIndexOutOfRange(t *testing.T) {
	_, err := Histogram(brokenBuckets{}).Create(hierotest.SmallTable())
	require.NotNil(t, err)
	bucketErr, ok := err.(errors.BucketIndexError)
	require.True(t, ok)
	require.Equal(t, 2, bucketErr.Index)
}

func TestWorkspaceReuseAndRebuild(t *testing.T) {
	tbl := hierotest.TestTable()
	b1 := ageBuckets(t)
	s := Histogram(b1)
	ws, err := s.Initialize(tbl)
	require.Nil(t, err)

	first, err := s.CreateWithWorkspace(tbl, ws)
	require.Nil(t, err)
	second, err := s.CreateWithWorkspace(tbl, ws)
	require.Nil(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, ws.builds)

	// an equivalent bucketing function reuses the assignment
	same := ageBuckets(t)
	_, err = Histogram(same).CreateWithWorkspace(tbl, ws)
	require.Nil(t, err)
	require.Equal(t, 1, ws.builds)

	// a different bucketing function forces a rebuild
	b2, err := NewExplicitBuckets("Age", 0, 5, 10)
	require.Nil(t, err)
	s2 := Histogram(b2)
	refined, err := s2.CreateWithWorkspace(tbl, ws)
	require.Nil(t, err)
	require.Equal(t, 2, ws.builds)
	require.Same(t, hiero.Buckets(b2), ws.Buckets())
	fresh, err := s2.Create(tbl)
	require.Nil(t, err)
	require.Equal(t, fresh, refined)

	// as does a different set of rows
	rows, err := table.NewSparseMembership(tbl.NumRows(), 0, 1, 2)
	require.Nil(t, err)
	subset, err := tbl.SelectRows(rows)
	require.Nil(t, err)
	r, err := s2.CreateWithWorkspace(subset, ws)
	require.Nil(t, err)
	require.Equal(t, 3, ws.builds)
	require.Equal(t, []int{0, 0, 3}, counts(r))
}

func TestPreparedDatasetReusesWorkspaces(t *testing.T) {
	ctx := context.Background()
	ds := hierotest.MakeParallel(t, hierotest.TestTable(), 4)
	s := Histogram(ageBuckets(t))
	prepared, err := dataset.Prepare[hiero.Table, *Groups[*CountResult], *GroupByWorkspace[*EmptyWorkspace]](ctx, ds, s)
	require.Nil(t, err)
	expected, err := dataset.Sketch[hiero.Table, *Groups[*CountResult]](ctx, ds, s)
	require.Nil(t, err)
	for i := 0; i < 2; i++ {
		actual, err := dataset.SketchPrepared[hiero.Table, *Groups[*CountResult], *GroupByWorkspace[*EmptyWorkspace]](ctx, prepared, s)
		require.Nil(t, err)
		require.Equal(t, expected, actual)
	}
	for _, p := range dataset.Leaves[*dataset.Prepared[hiero.Table, *GroupByWorkspace[*EmptyWorkspace]]](prepared) {
		require.Equal(t, 1, p.Workspace.builds)
	}
}

func TestInitializeLoadsAllColumnsAtOnce(t *testing.T) {
	loader, err := memory.CreateLoader("test", column.Ints("a", 1, 2, 3), column.Ints("b", 4, 5, 6), column.Strings("c", "x", "y", "z"))
	require.Nil(t, err)
	tbl, err := table.Load(loader, true)
	require.Nil(t, err)
	ba, err := NewDoubleBuckets("a", 0, 3, 3)
	require.Nil(t, err)
	bc, err := NewStringBuckets("c", "x")
	require.Nil(t, err)
	s := GroupBy[*Groups[*SumResult], *GroupByWorkspace[*ColumnWorkspace]](bc, GroupBy[*SumResult, *ColumnWorkspace](ba, Sum("b")))
	result, err := s.Create(tbl)
	require.Nil(t, err)
	require.Equal(t, 1, loader.Invocations())
	require.Equal(t, [][]string{{"a", "b", "c"}}, loader.Requests())
	require.Equal(t, 15.0, result.PerBucket(0).PerBucket(0).Sum+result.PerBucket(0).PerBucket(1).Sum+result.PerBucket(0).PerBucket(2).Sum)
}

func TestCompose(t *testing.T) {
	tbl := hierotest.IntTable(2, 30, 2, 10)
	s := Compose[*SumResult, *ColumnWorkspace](Sum("Column0"), Sum("Column1"))
	result := hierotest.RequirePartitionInvariant[*Composed[*SumResult]](t, tbl, s)
	require.Len(t, result.Results, 2)
	require.Equal(t, 30, result.Results[0].Count)
	require.Equal(t, []string{"Column0", "Column1"}, s.Columns())

	values, ok := result.ToValue().([]interface{})
	require.True(t, ok)
	require.Len(t, values, 2)
}

func TestFileSize(t *testing.T) {
	l1, err := memory.CreateLoader("one", column.Ints("a", 1, 2))
	require.Nil(t, err)
	l2, err := memory.CreateLoader("two", column.Strings("s", "hello"))
	require.Nil(t, err)
	ds, err := dataset.MakeParallel([]dataset.Dataset[hiero.FileLoader]{dataset.MakeLocal[hiero.FileLoader](l1), dataset.MakeLocal[hiero.FileLoader](l2)}, nil)
	require.Nil(t, err)
	info, err := dataset.Sketch[hiero.FileLoader, *FileInfo](context.Background(), ds, FileSize())
	require.Nil(t, err)
	require.Equal(t, 2, info.FileCount)
	require.Equal(t, l1.SizeInBytes()+l2.SizeInBytes(), info.TotalSize)
}

func TestGroupsToValue(t *testing.T) {
	result, err := Histogram(ageBuckets(t)).Create(hierotest.SmallTable())
	require.Nil(t, err)
	require.Equal(t, map[string]interface{}{
		"buckets":  []interface{}{1, 1, 1},
		"overflow": 0,
	}, result.ToValue())
}
