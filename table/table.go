// Package table provides Tables: columnar, optionally lazily-loaded collections of
// rows, along with Memberships describing which of their rows are logically present.
package table

import (
	"fmt"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
	"github.com/go-sif/hiero/internal/util"
	"github.com/go-sif/hiero/schema"
	"github.com/hashicorp/go-multierror"
)

type table struct {
	id         string
	schema     hiero.Schema
	membership hiero.Membership
	source     *columnSource
}

// New creates a fully-materialized Table from a set of sealed Columns. Every problem
// with the Columns (duplicate names, differing lengths) is reported at once.
func New(columns ...hiero.Column) (hiero.Table, error) {
	var multierr *multierror.Error
	s := schema.CreateSchema()
	numRows := 0
	if len(columns) > 0 {
		numRows = columns[0].SizeInRows()
	}
	for _, col := range columns {
		desc := col.Description()
		if _, err := s.CreateColumn(desc.Name, desc.Kind); err != nil {
			multierr = multierror.Append(multierr, err)
		}
		if col.SizeInRows() != numRows {
			multierr = multierror.Append(multierr, errors.ShapeMismatchError{What: "column " + desc.Name, Expected: numRows, Actual: col.SizeInRows()})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &table{
		id:         util.NewID(),
		schema:     s,
		membership: NewFullMembership(numRows),
		source:     newMaterializedSource(numRows, columns),
	}, nil
}

// NewLazy creates a Table whose Columns are loaded on first access through loader
func NewLazy(s hiero.Schema, numRows int, loader hiero.ColumnLoader) hiero.Table {
	return &table{
		id:         util.NewID(),
		schema:     s,
		membership: NewFullMembership(numRows),
		source:     newLazySource(s, numRows, loader),
	}
}

// Load creates a Table from a FileLoader, either lazily or by eagerly loading every column
func Load(loader hiero.FileLoader, lazy bool) (hiero.Table, error) {
	s, err := loader.Schema()
	if err != nil {
		return nil, fmt.Errorf("Unable to read schema of %s: %w", loader.Name(), err)
	}
	numRows, err := loader.NumRows()
	if err != nil {
		return nil, fmt.Errorf("Unable to count rows of %s: %w", loader.Name(), err)
	}
	t := NewLazy(s, numRows, loader)
	if lazy {
		return t, nil
	}
	if _, err = t.GetLoadedColumns(s.ColumnNames()...); err != nil {
		return nil, err
	}
	return t, nil
}

// Split divides a Table into row-contiguous fragments of at most fragmentSize logical rows,
// in row order. Fragments share column storage with t.
func Split(t hiero.Table, fragmentSize int) ([]hiero.Table, error) {
	if fragmentSize < 1 {
		return nil, fmt.Errorf("Fragment size must be positive, got %d", fragmentSize)
	}
	fragments := make([]hiero.Table, 0)
	for _, m := range splitMembership(t.Membership(), fragmentSize) {
		fragment, err := t.SelectRows(m)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// ID returns a unique identifier for this Table
func (t *table) ID() string {
	return t.id
}

// Schema returns the Schema of this Table
func (t *table) Schema() hiero.Schema {
	return t.schema
}

// NumRows returns the number of logically present rows
func (t *table) NumRows() int {
	return t.membership.Size()
}

// Membership returns the set of logically present rows
func (t *table) Membership() hiero.Membership {
	return t.membership
}

// GetColumn returns a single Column, loading it if necessary
func (t *table) GetColumn(colName string) (hiero.Column, error) {
	cols, err := t.GetLoadedColumns(colName)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// GetLoadedColumns returns the named Columns in the requested order. Any which have not
// yet been materialized are fetched with a single loader call.
func (t *table) GetLoadedColumns(colNames ...string) ([]hiero.Column, error) {
	for _, name := range colNames {
		if !t.schema.HasColumn(name) {
			return nil, errors.MissingColumnError{Name: name}
		}
	}
	return t.source.get(colNames)
}

// SelectRows returns a Table containing only the rows present both in this Table and in rows
func (t *table) SelectRows(rows hiero.Membership) (hiero.Table, error) {
	if rows.Max() > t.source.numRows {
		bitmap := Bitmap(rows)
		if !bitmap.IsEmpty() && int(bitmap.Maximum()) >= t.source.numRows {
			return nil, errors.IndexOutOfBoundsError{Index: int(bitmap.Maximum()), Size: t.source.numRows}
		}
	}
	return &table{
		id:         util.NewID(),
		schema:     t.schema,
		membership: Intersect(t.membership, rows),
		source:     t.source,
	}, nil
}

// Project returns a Table containing only the named columns
func (t *table) Project(colNames ...string) (hiero.Table, error) {
	projected, err := t.schema.Project(colNames...)
	if err != nil {
		return nil, err
	}
	return &table{
		id:         util.NewID(),
		schema:     projected,
		membership: t.membership,
		source:     t.source,
	}, nil
}
