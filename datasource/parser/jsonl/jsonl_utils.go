package jsonl

import (
	"math"
	"strings"
	"time"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
	"github.com/go-sif/hiero/errors"
	"github.com/tidwall/gjson"
)

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}

// parseValue converts a gjson result into a value suitable for a Column of the given kind.
// Absent and null values are missing.
func parseValue(desc hiero.ColumnDescription, res gjson.Result) (interface{}, error) {
	if !res.Exists() || res.Type == gjson.Null {
		return nil, nil
	}
	unsupported := errors.UnsupportedValueError{Name: desc.Name, Kind: desc.Kind.String(), Value: res.Raw}
	switch desc.Kind {
	case hiero.IntegerKind:
		switch res.Type {
		case gjson.Number:
			if res.Num != math.Trunc(res.Num) {
				return nil, unsupported
			}
			return int(res.Int()), nil
		case gjson.String:
			return column.Parse(desc, res.Str)
		}
	case hiero.DoubleKind:
		switch res.Type {
		case gjson.Number:
			return res.Num, nil
		case gjson.String:
			return column.Parse(desc, res.Str)
		}
	case hiero.StringKind, hiero.CategoryKind:
		return res.String(), nil
	case hiero.DateKind:
		switch res.Type {
		case gjson.Number:
			return time.UnixMilli(res.Int()).UTC(), nil
		case gjson.String:
			return column.Parse(desc, res.Str)
		}
	}
	return nil, unsupported
}
