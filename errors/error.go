package errors

import (
	"fmt"
)

// SealedColumnError occurs when a sealed column is appended to or sealed a second time
type SealedColumnError struct{ Name string }

// Error returns a textual representation of this SealedColumnError
func (e SealedColumnError) Error() string {
	return fmt.Sprintf("Column %s is already sealed", e.Name)
}

// IndexOutOfBoundsError occurs when a row index falls outside the physical range of a Column or Table
type IndexOutOfBoundsError struct {
	Index int
	Size  int
}

// Error returns a textual representation of this IndexOutOfBoundsError
func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("Index %d is out of bounds [0, %d)", e.Index, e.Size)
}

// MissingValueError occurs when a typed getter is used to read a missing value
type MissingValueError struct {
	Name string
	Row  int
}

// Error returns a textual representation of this MissingValueError
func (e MissingValueError) Error() string {
	return fmt.Sprintf("Value for column %s in row %d is missing", e.Name, e.Row)
}

// KindMismatchError occurs when a Column is read or written as a kind other than its own
type KindMismatchError struct {
	Name     string
	Expected string
	Actual   string
}

// Error returns a textual representation of this KindMismatchError
func (e KindMismatchError) Error() string {
	return fmt.Sprintf("Column %s has kind %s, not %s", e.Name, e.Actual, e.Expected)
}

// UnsupportedValueError occurs when a value cannot be stored in a Column of a particular kind
type UnsupportedValueError struct {
	Name  string
	Kind  string
	Value interface{}
}

// Error returns a textual representation of this UnsupportedValueError
func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("Value %v (%T) cannot be stored in column %s of kind %s", e.Value, e.Value, e.Name, e.Kind)
}

// MissingColumnError occurs when a named column does not exist in a Schema, Table or data source
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// DuplicateColumnError occurs when a column name is used more than once within a Schema or Table
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s is defined more than once", e.Name)
}

// ShapeMismatchError occurs when two structures which must have the same shape do not
type ShapeMismatchError struct {
	What     string
	Expected int
	Actual   int
}

// Error returns a textual representation of this ShapeMismatchError
func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("Shape mismatch in %s: expected %d, found %d", e.What, e.Expected, e.Actual)
}

// BucketIndexError occurs when a bucketing function assigns a row to a bucket which does not exist
type BucketIndexError struct {
	Index      int
	NumBuckets int
}

// Error returns a textual representation of this BucketIndexError
func (e BucketIndexError) Error() string {
	return fmt.Sprintf("Bucket index %d is out of range for %d buckets", e.Index, e.NumBuckets)
}

// EmptyDatasetError occurs when a parallel Dataset is constructed without children
type EmptyDatasetError struct{}

// Error returns a textual representation of this EmptyDatasetError
func (e EmptyDatasetError) Error() string {
	return "Parallel dataset must have at least one child"
}
