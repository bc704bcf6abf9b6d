package hiero

import (
	"fmt"
	"strings"
	"time"
)

// ContentsKind describes the kind of values stored in a Column
type ContentsKind int

const (
	// IntegerKind columns store int values
	IntegerKind ContentsKind = iota
	// DoubleKind columns store float64 values
	DoubleKind
	// StringKind columns store arbitrary string values
	StringKind
	// CategoryKind columns store strings drawn from a (usually small) dictionary of distinct values
	CategoryKind
	// DateKind columns store time.Time values
	DateKind
)

// String returns a textual representation of a ContentsKind
func (k ContentsKind) String() string {
	switch k {
	case IntegerKind:
		return "Integer"
	case DoubleKind:
		return "Double"
	case StringKind:
		return "String"
	case CategoryKind:
		return "Category"
	case DateKind:
		return "Date"
	default:
		return "Unknown"
	}
}

// ParseKind translates a case-insensitive kind name, as produced by String, to a ContentsKind
func ParseKind(name string) (ContentsKind, error) {
	for k := IntegerKind; k <= DateKind; k++ {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("Unknown column kind %q", name)
}

// IsNumeric returns true iff values of this kind can be interpreted as doubles
func (k ContentsKind) IsNumeric() bool {
	return k == IntegerKind || k == DoubleKind || k == DateKind
}

// IsString returns true iff values of this kind are strings
func (k ContentsKind) IsString() bool {
	return k == StringKind || k == CategoryKind
}

// ColumnDescription names a Column and describes the kind of its contents
type ColumnDescription struct {
	Name string
	Kind ContentsKind
}

// Column is an immutable, sealed sequence of values of a single ContentsKind.
// Every accessor fails with an IndexOutOfBoundsError for rows outside [0, SizeInRows()).
// Typed getters fail with a MissingValueError for missing values, and with a
// KindMismatchError when called on a Column of a different kind.
type Column interface {
	Description() ColumnDescription     // Description returns the name and kind of this Column
	Kind() ContentsKind                 // Kind returns the ContentsKind of this Column
	SizeInRows() int                    // SizeInRows returns the physical number of rows in this Column
	IsMissing(row int) (bool, error)    // IsMissing returns true iff the value in the given row is missing
	Get(row int) (interface{}, error)   // Get returns any value as an interface{}, or nil if it is missing
	GetInt(row int) (int, error)        // GetInt retrieves a value from an Integer Column
	GetDouble(row int) (float64, error) // GetDouble retrieves a value from a Double Column
	GetString(row int) (string, error)  // GetString retrieves a value from a String or Category Column
	GetDate(row int) (time.Time, error) // GetDate retrieves a value from a Date Column
	AsDouble(row int) (float64, error)  // AsDouble converts an Integer, Double or Date (unix milliseconds) value to a float64
}

// CategoryColumn is a Column which additionally maintains a dictionary of its distinct values
type CategoryColumn interface {
	Column
	Dictionary() []string         // Dictionary returns the distinct values of this Column, in order of first appearance
	GetCode(row int) (int, error) // GetCode returns the index in Dictionary() of the value in the given row
}

// AppendableColumn is a Column under construction. Values may only be appended until
// the column is sealed, after which any further modification fails.
type AppendableColumn interface {
	Description() ColumnDescription
	Append(value interface{}) error // Append adds a value to the end of this column
	AppendMissing() error           // AppendMissing adds a missing value to the end of this column
	Seal() (Column, error)          // Seal irreversibly freezes this column, returning the immutable result. Fails if called twice.
	IsSealed() bool
}
