package dsv

import (
	"fmt"
	"os"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/datasource"
)

// Loader reads Columns from a single DSV file on disk. Each call to
// LoadColumns re-reads the file, materializing only the requested columns.
type Loader struct {
	path     string
	schema   hiero.Schema
	parser   *Parser
	rowCount datasource.RowCount
}

// CreateLoader is a factory for Loaders. The Schema must describe every field
// in the file, in file order.
func CreateLoader(path string, schema hiero.Schema, parser *Parser) *Loader {
	return &Loader{path: path, schema: schema, parser: parser}
}

// Opener returns a function which creates a Loader for a path, for use with file.Find
func Opener(schema hiero.Schema, parser *Parser) func(path string) (hiero.FileLoader, error) {
	return func(path string) (hiero.FileLoader, error) {
		return CreateLoader(path, schema, parser), nil
	}
}

// Name returns the path of the underlying file
func (l *Loader) Name() string {
	return l.path
}

// Schema returns the Schema of the underlying file
func (l *Loader) Schema() (hiero.Schema, error) {
	return l.schema, nil
}

// NumRows counts the records in the underlying file. The count is computed once.
func (l *Loader) NumRows() (int, error) {
	return l.rowCount.Get(func() (int, error) {
		f, err := os.Open(l.path)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		numRows, err := l.parser.CountRows(f, l.schema)
		if err != nil {
			return 0, fmt.Errorf("Unable to count rows of %s: %w", l.path, err)
		}
		return numRows, nil
	})
}

// LoadColumns parses the requested columns from the underlying file
func (l *Loader) LoadColumns(colNames []string) ([]hiero.Column, error) {
	if err := datasource.ValidateRequest(l.schema, colNames); err != nil {
		return nil, err
	}
	numRows, err := l.NumRows()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cols, err := l.parser.Parse(f, l.schema, colNames, numRows)
	if err != nil {
		return nil, fmt.Errorf("Unable to parse %s: %w", l.path, err)
	}
	return cols, nil
}

// SizeInBytes returns the size of the underlying file
func (l *Loader) SizeInBytes() int64 {
	return datasource.FileSize(l.path)
}
