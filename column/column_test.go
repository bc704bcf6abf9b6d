package column

import (
	"testing"
	"time"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
	"github.com/stretchr/testify/require"
)

func TestSealTwice(t *testing.T) {
	b, err := NewBuilder(hiero.ColumnDescription{Name: "Age", Kind: hiero.IntegerKind})
	require.Nil(t, err)
	require.Nil(t, b.Append(1))
	require.Nil(t, b.Append(2))
	col, err := b.Seal()
	require.Nil(t, err)
	require.Equal(t, 2, col.SizeInRows())
	require.True(t, b.IsSealed())

	_, err = b.Seal()
	require.NotNil(t, err)
	_, ok := err.(errors.SealedColumnError)
	require.True(t, ok)
}

func TestAppendAfterSeal(t *testing.T) {
	b, err := NewBuilder(hiero.ColumnDescription{Name: "Name", Kind: hiero.StringKind})
	require.Nil(t, err)
	require.Nil(t, b.Append("Mike"))
	_, err = b.Seal()
	require.Nil(t, err)

	err = b.Append("John")
	_, ok := err.(errors.SealedColumnError)
	require.True(t, ok)
	err = b.AppendMissing()
	_, ok = err.(errors.SealedColumnError)
	require.True(t, ok)
}

func TestIndexOutOfBounds(t *testing.T) {
	col := Ints("Age", 20, 30, 10)
	_, err := col.GetInt(5)
	require.NotNil(t, err)
	oob, ok := err.(errors.IndexOutOfBoundsError)
	require.True(t, ok)
	require.Equal(t, 5, oob.Index)
	require.Equal(t, 3, oob.Size)

	_, err = col.IsMissing(-1)
	_, ok = err.(errors.IndexOutOfBoundsError)
	require.True(t, ok)
	_, err = col.Get(3)
	_, ok = err.(errors.IndexOutOfBoundsError)
	require.True(t, ok)
}

func TestMissingValues(t *testing.T) {
	col, err := FromValues(hiero.ColumnDescription{Name: "Salary", Kind: hiero.DoubleKind}, 1.5, nil, 3)
	require.Nil(t, err)
	require.Equal(t, 3, col.SizeInRows())

	missing, err := col.IsMissing(1)
	require.Nil(t, err)
	require.True(t, missing)
	missing, err = col.IsMissing(0)
	require.Nil(t, err)
	require.False(t, missing)

	_, err = col.GetDouble(1)
	_, ok := err.(errors.MissingValueError)
	require.True(t, ok)

	v, err := col.Get(1)
	require.Nil(t, err)
	require.Nil(t, v)

	d, err := col.GetDouble(2)
	require.Nil(t, err)
	require.Equal(t, 3.0, d)

	count, err := MissingCount(col)
	require.Nil(t, err)
	require.Equal(t, 1, count)
}

func TestKindMismatch(t *testing.T) {
	col := Strings("Name", "Mike", "John")
	_, err := col.GetInt(0)
	mismatch, ok := err.(errors.KindMismatchError)
	require.True(t, ok)
	require.Equal(t, "Integer", mismatch.Expected)
	require.Equal(t, "String", mismatch.Actual)

	_, err = col.AsDouble(0)
	_, ok = err.(errors.KindMismatchError)
	require.True(t, ok)
}

func TestUnsupportedValue(t *testing.T) {
	b, err := NewBuilder(hiero.ColumnDescription{Name: "Age", Kind: hiero.IntegerKind})
	require.Nil(t, err)
	err = b.Append("twenty")
	_, ok := err.(errors.UnsupportedValueError)
	require.True(t, ok)
	err = b.Append(2.5)
	_, ok = err.(errors.UnsupportedValueError)
	require.True(t, ok)
}

func TestAsDouble(t *testing.T) {
	ints := Ints("i", 4)
	v, err := ints.AsDouble(0)
	require.Nil(t, err)
	require.Equal(t, 4.0, v)

	when := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	dates := Dates("d", when)
	v, err = dates.AsDouble(0)
	require.Nil(t, err)
	require.Equal(t, float64(when.UnixMilli()), v)
}

func TestCategoryDictionary(t *testing.T) {
	col, err := FromValues(hiero.ColumnDescription{Name: "Name", Kind: hiero.CategoryKind}, "Mike", "John", nil, "Mike")
	require.Nil(t, err)
	cat, ok := col.(hiero.CategoryColumn)
	require.True(t, ok)
	require.Equal(t, []string{"Mike", "John"}, cat.Dictionary())

	code, err := cat.GetCode(3)
	require.Nil(t, err)
	require.Equal(t, 0, code)
	s, err := cat.GetString(1)
	require.Nil(t, err)
	require.Equal(t, "John", s)
	_, err = cat.GetCode(2)
	_, ok = err.(errors.MissingValueError)
	require.True(t, ok)
}

func TestParse(t *testing.T) {
	v, err := Parse(hiero.ColumnDescription{Name: "a", Kind: hiero.IntegerKind}, "42")
	require.Nil(t, err)
	require.Equal(t, 42, v)

	v, err = Parse(hiero.ColumnDescription{Name: "d", Kind: hiero.DateKind}, "2021-03-04")
	require.Nil(t, err)
	require.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), v)

	_, err = Parse(hiero.ColumnDescription{Name: "b", Kind: hiero.DoubleKind}, "abc")
	_, ok := err.(errors.UnsupportedValueError)
	require.True(t, ok)
}

func TestSealedColumnsCopyValues(t *testing.T) {
	ints := []int{1, 2}
	doubles := []float64{1.5}
	strs := []string{"a"}
	dates := []time.Time{time.Unix(0, 0).UTC()}
	cols := []hiero.Column{Ints("i", ints...), Doubles("d", doubles...), Strings("s", strs...), Dates("t", dates...)}
	ints[0] = 10
	doubles[0] = 10
	strs[0] = "z"
	dates[0] = time.Unix(10, 0).UTC()

	i, err := cols[0].GetInt(0)
	require.Nil(t, err)
	require.Equal(t, 1, i)
	d, err := cols[1].GetDouble(0)
	require.Nil(t, err)
	require.Equal(t, 1.5, d)
	s, err := cols[2].GetString(0)
	require.Nil(t, err)
	require.Equal(t, "a", s)
	date, err := cols[3].GetDate(0)
	require.Nil(t, err)
	require.Equal(t, time.Unix(0, 0).UTC(), date)
}
