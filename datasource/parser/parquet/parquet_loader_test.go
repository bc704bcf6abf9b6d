package parquet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/table"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name   string   `parquet:"name"`
	Age    int32    `parquet:"age"`
	Salary *float64 `parquet:"salary,optional"`
	Active bool     `parquet:"active"`
}

func salary(v float64) *float64 {
	return &v
}

// writePeople writes each batch of rows as a separate row group
func writePeople(t *testing.T, batches ...[]person) string {
	path := filepath.Join(t.TempDir(), "people.parquet")
	f, err := os.Create(path)
	require.Nil(t, err)
	defer f.Close()
	w := parquet.NewGenericWriter[person](f)
	for _, batch := range batches {
		_, err = w.Write(batch)
		require.Nil(t, err)
		require.Nil(t, w.Flush())
	}
	require.Nil(t, w.Close())
	return path
}

func testFile(t *testing.T) string {
	return writePeople(t,
		[]person{
			{Name: "Mike", Age: 20, Salary: salary(10), Active: true},
			{Name: "John", Age: 30},
		},
		[]person{
			{Name: "Tom", Age: 10, Salary: salary(30)},
		},
	)
}

func TestParquetLoaderSchema(t *testing.T) {
	loader := CreateLoader(testFile(t))
	s, err := loader.Schema()
	require.Nil(t, err)
	require.ElementsMatch(t, []string{"name", "age", "salary", "active"}, s.ColumnNames())
	age, err := s.GetDescription("age")
	require.Nil(t, err)
	require.Equal(t, hiero.IntegerKind, age.Kind)
	sal, err := s.GetDescription("salary")
	require.Nil(t, err)
	require.Equal(t, hiero.DoubleKind, sal.Kind)
	name, err := s.GetDescription("name")
	require.Nil(t, err)
	require.Equal(t, hiero.StringKind, name.Kind)

	numRows, err := loader.NumRows()
	require.Nil(t, err)
	require.Equal(t, 3, numRows)
	require.True(t, loader.SizeInBytes() > 0)
}

func TestParquetLoaderAcrossRowGroups(t *testing.T) {
	loader := CreateLoader(testFile(t))
	cols, err := loader.LoadColumns([]string{"age", "name"})
	require.Nil(t, err)
	require.Len(t, cols, 2)
	for i, expected := range []int{20, 30, 10} {
		age, err := cols[0].GetInt(i)
		require.Nil(t, err)
		require.Equal(t, expected, age)
	}
	name, err := cols[1].GetString(2)
	require.Nil(t, err)
	require.Equal(t, "Tom", name)
}

func TestParquetLoaderNulls(t *testing.T) {
	loader := CreateLoader(testFile(t))
	cols, err := loader.LoadColumns([]string{"salary", "active"})
	require.Nil(t, err)
	missing, err := cols[0].IsMissing(1)
	require.Nil(t, err)
	require.True(t, missing)
	sal, err := cols[0].GetDouble(2)
	require.Nil(t, err)
	require.Equal(t, 30.0, sal)
	active, err := cols[1].GetString(0)
	require.Nil(t, err)
	require.Equal(t, "true", active)
}

func TestParquetLoaderUnknownColumn(t *testing.T) {
	loader := CreateLoader(testFile(t))
	_, err := loader.LoadColumns([]string{"height"})
	require.NotNil(t, err)
}

func TestParquetLoaderMissingFile(t *testing.T) {
	loader := CreateLoader(filepath.Join(t.TempDir(), "nope.parquet"))
	_, err := loader.Schema()
	require.NotNil(t, err)
	_, err = loader.LoadColumns([]string{"age"})
	require.NotNil(t, err)
}

func TestParquetLazyTable(t *testing.T) {
	fl, err := Open(testFile(t))
	require.Nil(t, err)
	tbl, err := table.Load(fl, true)
	require.Nil(t, err)
	require.Equal(t, 3, tbl.NumRows())
	col, err := tbl.GetColumn("salary")
	require.Nil(t, err)
	sal, err := col.GetDouble(0)
	require.Nil(t, err)
	require.Equal(t, 10.0, sal)
}
