package table

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
	"github.com/go-sif/hiero/internal/util"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/singleflight"
)

// columnSource owns the physical Columns of one or more Tables. Columns are
// materialized on demand through a loader and cached for the lifetime of the
// source. Tables derived from one another share a single columnSource.
type columnSource struct {
	schema  hiero.Schema
	numRows int
	loader  hiero.ColumnLoader
	lock    sync.Mutex
	columns map[string]hiero.Column
	loads   singleflight.Group
}

func newMaterializedSource(numRows int, columns []hiero.Column) *columnSource {
	cache := make(map[string]hiero.Column, len(columns))
	for _, col := range columns {
		cache[col.Description().Name] = col
	}
	return &columnSource{numRows: numRows, columns: cache}
}

func newLazySource(s hiero.Schema, numRows int, loader hiero.ColumnLoader) *columnSource {
	return &columnSource{schema: s, numRows: numRows, loader: loader, columns: make(map[string]hiero.Column)}
}

// missing returns the sorted, deduplicated subset of colNames which is not yet cached
func (s *columnSource) missing(colNames []string) []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	seen := make(map[string]bool, len(colNames))
	result := make([]string, 0)
	for _, name := range colNames {
		if _, ok := s.columns[name]; !ok && !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

// get returns the named Columns, loading every uncached one with a single loader call.
// Concurrent requests for the same uncached set share one loader invocation.
func (s *columnSource) get(colNames []string) ([]hiero.Column, error) {
	toLoad := s.missing(colNames)
	if len(toLoad) > 0 {
		if s.loader == nil {
			return nil, errors.MissingColumnError{Name: toLoad[0]}
		}
		_, err, _ := s.loads.Do(strings.Join(toLoad, "\x00"), func() (interface{}, error) {
			// a concurrent flight may have loaded some of these already
			stillMissing := s.missing(toLoad)
			if len(stillMissing) == 0 {
				return nil, nil
			}
			return nil, s.load(stillMissing)
		})
		if err != nil {
			return nil, err
		}
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	result := make([]hiero.Column, len(colNames))
	for i, name := range colNames {
		col, ok := s.columns[name]
		if !ok {
			return nil, errors.MissingColumnError{Name: name}
		}
		result[i] = col
	}
	return result, nil
}

// load invokes the loader and validates and caches its result
func (s *columnSource) load(colNames []string) error {
	loaded, err := s.loader.LoadColumns(colNames)
	if err != nil {
		return fmt.Errorf("Unable to load columns %v: %w", colNames, err)
	}
	if len(loaded) != len(colNames) {
		return errors.ShapeMismatchError{What: "loaded columns", Expected: len(colNames), Actual: len(loaded)}
	}
	var multierr *multierror.Error
	for i, col := range loaded {
		if col == nil {
			multierr = multierror.Append(multierr, errors.MissingColumnError{Name: colNames[i]})
			continue
		}
		if name := col.Description().Name; name != colNames[i] {
			multierr = multierror.Append(multierr, fmt.Errorf("Loader returned column %s in place of %s", name, colNames[i]))
		}
		desc, err := s.schema.GetDescription(colNames[i])
		if err != nil {
			multierr = multierror.Append(multierr, err)
		} else if col.Kind() != desc.Kind {
			multierr = multierror.Append(multierr, errors.KindMismatchError{Name: colNames[i], Expected: desc.Kind.String(), Actual: col.Kind().String()})
		}
		if col.SizeInRows() != s.numRows {
			multierr = multierror.Append(multierr, errors.ShapeMismatchError{What: "column " + colNames[i], Expected: s.numRows, Actual: col.SizeInRows()})
		}
	}
	if multierr != nil {
		multierr.ErrorFormat = util.FormatMultiError
		return multierr
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for i, col := range loaded {
		// columns are immutable, so the first copy cached is the one every caller observes
		if _, ok := s.columns[colNames[i]]; !ok {
			s.columns[colNames[i]] = col
		}
	}
	return nil
}
