// Package datasource contains helpers shared by the ColumnLoader implementations
// in its subpackages.
package datasource

import (
	"os"
	"sync"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
	"github.com/go-sif/hiero/errors"
	"github.com/hashicorp/go-multierror"
)

// ValidateRequest ensures that every requested column exists in a Schema, reporting all unknown names at once
func ValidateRequest(s hiero.Schema, colNames []string) error {
	var multierr *multierror.Error
	for _, name := range colNames {
		if !s.HasColumn(name) {
			multierr = multierror.Append(multierr, errors.MissingColumnError{Name: name})
		}
	}
	return multierr.ErrorOrNil()
}

// CreateBuilders produces one AppendableColumn for each requested column, in request order
func CreateBuilders(s hiero.Schema, colNames []string, capacity int) ([]hiero.AppendableColumn, error) {
	builders := make([]hiero.AppendableColumn, len(colNames))
	for i, name := range colNames {
		desc, err := s.GetDescription(name)
		if err != nil {
			return nil, err
		}
		builders[i], err = column.NewBuilderWithCapacity(desc, capacity)
		if err != nil {
			return nil, err
		}
	}
	return builders, nil
}

// SealAll seals every builder, in order
func SealAll(builders []hiero.AppendableColumn) ([]hiero.Column, error) {
	cols := make([]hiero.Column, len(builders))
	for i, b := range builders {
		col, err := b.Seal()
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

// EstimateSize roughly estimates the in-memory size, in bytes, of a set of Columns
func EstimateSize(cols []hiero.Column) int64 {
	var size int64
	for _, col := range cols {
		switch col.Kind() {
		case hiero.StringKind, hiero.CategoryKind:
			for i := 0; i < col.SizeInRows(); i++ {
				if s, err := col.GetString(i); err == nil {
					size += int64(len(s))
				}
				size += 16
			}
		case hiero.DateKind:
			size += int64(col.SizeInRows()) * 24
		default:
			size += int64(col.SizeInRows()) * 8
		}
	}
	return size
}

// FileSize returns the size of a file on disk, or 0 if it cannot be determined
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// RowCount memoizes the outcome of counting the rows in a data source
type RowCount struct {
	once    sync.Once
	numRows int
	err     error
}

// Get counts rows using count on first use, and returns the memoized outcome thereafter
func (c *RowCount) Get(count func() (int, error)) (int, error) {
	c.once.Do(func() {
		c.numRows, c.err = count()
	})
	return c.numRows, c.err
}
