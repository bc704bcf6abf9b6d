package parquet

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/datasource"
	"github.com/go-sif/hiero/schema"
	"github.com/parquet-go/parquet-go"
)

// Loader reads Columns from a single Parquet file on disk. The Schema is
// derived from the file's top-level leaf columns.
type Loader struct {
	path string

	once    sync.Once
	schema  hiero.Schema
	numRows int
	err     error
}

// CreateLoader is a factory for Loaders
func CreateLoader(path string) *Loader {
	return &Loader{path: path}
}

// Open creates a Loader for a path, for use with file.Find
func Open(path string) (hiero.FileLoader, error) {
	return CreateLoader(path), nil
}

func openFile(path string) (*os.File, *parquet.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	pf, err := parquet.OpenFile(f, info.Size(),
		parquet.SkipBloomFilters(true),
		parquet.SkipPageIndex(true),
	)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("Unable to open parquet file %s: %w", path, err)
	}
	return f, pf, nil
}

// describe reads the file footer once
func (l *Loader) describe() (hiero.Schema, int, error) {
	l.once.Do(func() {
		f, pf, err := openFile(l.path)
		if err != nil {
			l.err = err
			return
		}
		defer f.Close()
		s := schema.CreateSchema()
		for _, field := range pf.Schema().Fields() {
			if !field.Leaf() || field.Repeated() {
				l.err = fmt.Errorf("Column %s of %s is not a flat column", field.Name(), l.path)
				return
			}
			kind, err := kindOf(field.Name(), field.Type())
			if err != nil {
				l.err = err
				return
			}
			if _, err = s.CreateColumn(field.Name(), kind); err != nil {
				l.err = err
				return
			}
		}
		l.schema = s
		l.numRows = int(pf.NumRows())
	})
	return l.schema, l.numRows, l.err
}

// Name returns the path of the underlying file
func (l *Loader) Name() string {
	return l.path
}

// Schema returns the Schema derived from the underlying file
func (l *Loader) Schema() (hiero.Schema, error) {
	s, _, err := l.describe()
	return s, err
}

// NumRows returns the number of rows recorded in the file footer
func (l *Loader) NumRows() (int, error) {
	_, numRows, err := l.describe()
	return numRows, err
}

// LoadColumns reads the column chunks for the requested columns, across all row groups
func (l *Loader) LoadColumns(colNames []string) ([]hiero.Column, error) {
	s, numRows, err := l.describe()
	if err != nil {
		return nil, err
	}
	if err = datasource.ValidateRequest(s, colNames); err != nil {
		return nil, err
	}
	builders, err := datasource.CreateBuilders(s, colNames, numRows)
	if err != nil {
		return nil, err
	}
	f, pf, err := openFile(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	for i, name := range colNames {
		leaf, ok := pf.Schema().Lookup(name)
		if !ok {
			return nil, fmt.Errorf("Column %s not found in %s", name, l.path)
		}
		for _, rowGroup := range pf.RowGroups() {
			if err = readChunk(rowGroup.ColumnChunks()[leaf.ColumnIndex], builders[i]); err != nil {
				return nil, fmt.Errorf("Unable to read column %s of %s: %w", name, l.path, err)
			}
		}
	}
	return datasource.SealAll(builders)
}

// SizeInBytes returns the size of the underlying file
func (l *Loader) SizeInBytes() int64 {
	return datasource.FileSize(l.path)
}
