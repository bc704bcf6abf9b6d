package dsv

import (
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
)

// fieldPositions maps each requested column to the index of its field within a record
func fieldPositions(schema hiero.Schema, colNames []string) []int {
	byName := make(map[string]int, schema.NumColumns())
	for i, name := range schema.ColumnNames() {
		byName[name] = i
	}
	positions := make([]int, len(colNames))
	for i, name := range colNames {
		positions[i] = byName[name]
	}
	return positions
}

// scanValue parses a single field, returning nil for missing values
func scanValue(conf *ParserConf, desc hiero.ColumnDescription, raw string) (interface{}, error) {
	// check for a nil value
	if len(raw) == 0 || raw == conf.NilValue {
		return nil, nil
	}
	return column.Parse(desc, raw)
}
