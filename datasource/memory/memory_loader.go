// Package memory provides a ColumnLoader over Columns which are already held in memory.
// It is primarily useful for testing lazy Tables.
package memory

import (
	"sync"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/datasource"
	"github.com/go-sif/hiero/errors"
	"github.com/go-sif/hiero/schema"
	"github.com/hashicorp/go-multierror"
)

// Loader serves sealed in-memory Columns, recording every request it receives
type Loader struct {
	name     string
	schema   hiero.Schema
	numRows  int
	columns  map[string]hiero.Column
	lock     sync.Mutex
	requests [][]string
}

// CreateLoader is a factory for Loaders. Columns must have unique names and equal lengths.
func CreateLoader(name string, columns ...hiero.Column) (*Loader, error) {
	var multierr *multierror.Error
	s := schema.CreateSchema()
	numRows := 0
	if len(columns) > 0 {
		numRows = columns[0].SizeInRows()
	}
	byName := make(map[string]hiero.Column, len(columns))
	for _, col := range columns {
		desc := col.Description()
		if _, err := s.CreateColumn(desc.Name, desc.Kind); err != nil {
			multierr = multierror.Append(multierr, err)
		}
		if col.SizeInRows() != numRows {
			multierr = multierror.Append(multierr, errors.ShapeMismatchError{What: "column " + desc.Name, Expected: numRows, Actual: col.SizeInRows()})
		}
		byName[desc.Name] = col
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Loader{name: name, schema: s, numRows: numRows, columns: byName}, nil
}

// Name returns the name of this Loader
func (l *Loader) Name() string {
	return l.name
}

// Schema returns the Schema of the Columns served by this Loader
func (l *Loader) Schema() (hiero.Schema, error) {
	return l.schema, nil
}

// NumRows returns the length of the Columns served by this Loader
func (l *Loader) NumRows() (int, error) {
	return l.numRows, nil
}

// LoadColumns returns the requested Columns, in request order
func (l *Loader) LoadColumns(colNames []string) ([]hiero.Column, error) {
	l.lock.Lock()
	request := make([]string, len(colNames))
	copy(request, colNames)
	l.requests = append(l.requests, request)
	l.lock.Unlock()

	if err := datasource.ValidateRequest(l.schema, colNames); err != nil {
		return nil, err
	}
	result := make([]hiero.Column, len(colNames))
	for i, name := range colNames {
		result[i] = l.columns[name]
	}
	return result, nil
}

// SizeInBytes estimates the size of the Columns served by this Loader
func (l *Loader) SizeInBytes() int64 {
	cols := make([]hiero.Column, 0, len(l.columns))
	for _, col := range l.columns {
		cols = append(cols, col)
	}
	return datasource.EstimateSize(cols)
}

// Invocations returns the number of times LoadColumns has been called
func (l *Loader) Invocations() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.requests)
}

// Requests returns the column names passed to each call of LoadColumns, in call order
func (l *Loader) Requests() [][]string {
	l.lock.Lock()
	defer l.lock.Unlock()
	result := make([][]string, len(l.requests))
	copy(result, l.requests)
	return result
}
