package column

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// DateLayouts are the layouts Parse attempts, in order, when parsing Date values
var DateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	default:
		return 0, false
	}
}

func toDouble(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		i, ok := toInt(value)
		return float64(i), ok
	}
}

func toString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func toDate(value interface{}) (time.Time, bool) {
	v, ok := value.(time.Time)
	return v, ok
}

// Parse converts a textual value into a value suitable for appending to a Column of the given kind
func Parse(desc hiero.ColumnDescription, raw string) (interface{}, error) {
	switch desc.Kind {
	case hiero.IntegerKind:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.UnsupportedValueError{Name: desc.Name, Kind: desc.Kind.String(), Value: raw}
		}
		return v, nil
	case hiero.DoubleKind:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.UnsupportedValueError{Name: desc.Name, Kind: desc.Kind.String(), Value: raw}
		}
		return v, nil
	case hiero.StringKind, hiero.CategoryKind:
		return raw, nil
	case hiero.DateKind:
		for _, layout := range DateLayouts {
			if v, err := time.Parse(layout, raw); err == nil {
				return v, nil
			}
		}
		return nil, errors.UnsupportedValueError{Name: desc.Name, Kind: desc.Kind.String(), Value: raw}
	default:
		return nil, fmt.Errorf("Cannot parse value for column %s of unknown kind %d", desc.Name, desc.Kind)
	}
}
