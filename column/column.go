// Package column provides immutable array Columns, the builders which produce
// them, and helpers for converting raw values into Column values.
package column

import (
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// baseColumn implements the kind-independent parts of a sealed Column.
// Typed getters fail with a KindMismatchError unless overridden.
type baseColumn struct {
	desc    hiero.ColumnDescription
	size    int
	missing *roaring.Bitmap
}

func (c *baseColumn) Description() hiero.ColumnDescription {
	return c.desc
}

func (c *baseColumn) Kind() hiero.ContentsKind {
	return c.desc.Kind
}

func (c *baseColumn) SizeInRows() int {
	return c.size
}

func (c *baseColumn) checkBounds(row int) error {
	if row < 0 || row >= c.size {
		return errors.IndexOutOfBoundsError{Index: row, Size: c.size}
	}
	return nil
}

// checkReadable verifies that row is in bounds and not missing
func (c *baseColumn) checkReadable(row int) error {
	if err := c.checkBounds(row); err != nil {
		return err
	}
	if c.missing != nil && c.missing.Contains(uint32(row)) {
		return errors.MissingValueError{Name: c.desc.Name, Row: row}
	}
	return nil
}

// IsMissing returns true iff the value in the given row is missing
func (c *baseColumn) IsMissing(row int) (bool, error) {
	if err := c.checkBounds(row); err != nil {
		return false, err
	}
	return c.missing != nil && c.missing.Contains(uint32(row)), nil
}

// MissingCount returns the number of missing values in this Column
func (c *baseColumn) MissingCount() int {
	if c.missing == nil {
		return 0
	}
	return int(c.missing.GetCardinality())
}

func (c *baseColumn) mismatch(expected hiero.ContentsKind) error {
	return errors.KindMismatchError{Name: c.desc.Name, Expected: expected.String(), Actual: c.desc.Kind.String()}
}

func (c *baseColumn) GetInt(row int) (int, error) {
	return 0, c.mismatch(hiero.IntegerKind)
}

func (c *baseColumn) GetDouble(row int) (float64, error) {
	return 0, c.mismatch(hiero.DoubleKind)
}

func (c *baseColumn) GetString(row int) (string, error) {
	return "", c.mismatch(hiero.StringKind)
}

func (c *baseColumn) GetDate(row int) (time.Time, error) {
	return time.Time{}, c.mismatch(hiero.DateKind)
}

func (c *baseColumn) AsDouble(row int) (float64, error) {
	return 0, c.mismatch(hiero.DoubleKind)
}

type intColumn struct {
	baseColumn
	values []int
}

func (c *intColumn) Get(row int) (interface{}, error) {
	if missing, err := c.IsMissing(row); err != nil || missing {
		return nil, err
	}
	return c.values[row], nil
}

func (c *intColumn) GetInt(row int) (int, error) {
	if err := c.checkReadable(row); err != nil {
		return 0, err
	}
	return c.values[row], nil
}

func (c *intColumn) AsDouble(row int) (float64, error) {
	v, err := c.GetInt(row)
	return float64(v), err
}

type doubleColumn struct {
	baseColumn
	values []float64
}

func (c *doubleColumn) Get(row int) (interface{}, error) {
	if missing, err := c.IsMissing(row); err != nil || missing {
		return nil, err
	}
	return c.values[row], nil
}

func (c *doubleColumn) GetDouble(row int) (float64, error) {
	if err := c.checkReadable(row); err != nil {
		return 0, err
	}
	return c.values[row], nil
}

func (c *doubleColumn) AsDouble(row int) (float64, error) {
	return c.GetDouble(row)
}

type stringColumn struct {
	baseColumn
	values []string
}

func (c *stringColumn) Get(row int) (interface{}, error) {
	if missing, err := c.IsMissing(row); err != nil || missing {
		return nil, err
	}
	return c.values[row], nil
}

func (c *stringColumn) GetString(row int) (string, error) {
	if err := c.checkReadable(row); err != nil {
		return "", err
	}
	return c.values[row], nil
}

type dateColumn struct {
	baseColumn
	values []time.Time
}

func (c *dateColumn) Get(row int) (interface{}, error) {
	if missing, err := c.IsMissing(row); err != nil || missing {
		return nil, err
	}
	return c.values[row], nil
}

func (c *dateColumn) GetDate(row int) (time.Time, error) {
	if err := c.checkReadable(row); err != nil {
		return time.Time{}, err
	}
	return c.values[row], nil
}

// AsDouble returns a date as milliseconds since the unix epoch
func (c *dateColumn) AsDouble(row int) (float64, error) {
	v, err := c.GetDate(row)
	if err != nil {
		return 0, err
	}
	return float64(v.UnixMilli()), nil
}
