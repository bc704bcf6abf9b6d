package transform

import (
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// Project creates a Map which keeps only the named columns, in the given order
func Project(colNames ...string) hiero.Map[hiero.Table, hiero.Table] {
	return hiero.MapFunc[hiero.Table, hiero.Table](func(t hiero.Table) (hiero.Table, error) {
		return t.Project(colNames...)
	})
}

// RemoveColumn creates a Map which drops existing columns
func RemoveColumn(oldNames ...string) hiero.Map[hiero.Table, hiero.Table] {
	return hiero.MapFunc[hiero.Table, hiero.Table](func(t hiero.Table) (hiero.Table, error) {
		removed := make(map[string]bool, len(oldNames))
		for _, name := range oldNames {
			if !t.Schema().HasColumn(name) {
				return nil, errors.MissingColumnError{Name: name}
			}
			removed[name] = true
		}
		var kept []string
		for _, name := range t.Schema().ColumnNames() {
			if !removed[name] {
				kept = append(kept, name)
			}
		}
		return t.Project(kept...)
	})
}
