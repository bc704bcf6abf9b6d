package transform

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/table"
)

// FilterOperation decides whether a row should be kept. cols holds the Columns
// named when the filter was created, in the same order.
type FilterOperation func(cols []hiero.Column, row int) (bool, error)

type filterMap struct {
	colNames []string
	fn       FilterOperation
}

// Filter creates a Map which keeps only the member rows for which fn returns true.
// The named columns are loaded together before fn is first called.
func Filter(fn FilterOperation, colNames ...string) hiero.Map[hiero.Table, hiero.Table] {
	return &filterMap{colNames: colNames, fn: fn}
}

func (f *filterMap) Apply(t hiero.Table) (hiero.Table, error) {
	cols, err := t.GetLoadedColumns(f.colNames...)
	if err != nil {
		return nil, err
	}
	kept := roaring.New()
	err = t.Membership().ForEachRow(func(row int) error {
		keep, err := f.fn(cols, row)
		if err != nil {
			return err
		}
		if keep {
			kept.Add(uint32(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rows, err := table.FromBitmap(t.Membership().Max(), kept)
	if err != nil {
		return nil, err
	}
	return t.SelectRows(rows)
}

// NotMissing creates a Map which drops rows where any of the named columns is missing
func NotMissing(colNames ...string) hiero.Map[hiero.Table, hiero.Table] {
	return Filter(func(cols []hiero.Column, row int) (bool, error) {
		for _, col := range cols {
			missing, err := col.IsMissing(row)
			if err != nil || missing {
				return false, err
			}
		}
		return true, nil
	}, colNames...)
}
