package column

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// builder accumulates values of type V until it is sealed
type builder[V any] struct {
	desc    hiero.ColumnDescription
	values  []V
	missing *roaring.Bitmap
	sealed  bool
	convert func(value interface{}) (V, bool)
	seal    func(base baseColumn, values []V) hiero.Column
}

// NewBuilder creates an AppendableColumn for the given ColumnDescription
func NewBuilder(desc hiero.ColumnDescription) (hiero.AppendableColumn, error) {
	return NewBuilderWithCapacity(desc, 0)
}

// NewBuilderWithCapacity creates an AppendableColumn with space pre-allocated for capacity values
func NewBuilderWithCapacity(desc hiero.ColumnDescription, capacity int) (hiero.AppendableColumn, error) {
	switch desc.Kind {
	case hiero.IntegerKind:
		return newBuilder(desc, capacity, toInt, func(base baseColumn, values []int) hiero.Column {
			return &intColumn{baseColumn: base, values: values}
		}), nil
	case hiero.DoubleKind:
		return newBuilder(desc, capacity, toDouble, func(base baseColumn, values []float64) hiero.Column {
			return &doubleColumn{baseColumn: base, values: values}
		}), nil
	case hiero.StringKind:
		return newBuilder(desc, capacity, toString, func(base baseColumn, values []string) hiero.Column {
			return &stringColumn{baseColumn: base, values: values}
		}), nil
	case hiero.CategoryKind:
		return newBuilder(desc, capacity, toString, encode), nil
	case hiero.DateKind:
		return newBuilder(desc, capacity, toDate, func(base baseColumn, values []time.Time) hiero.Column {
			return &dateColumn{baseColumn: base, values: values}
		}), nil
	default:
		return nil, fmt.Errorf("Cannot build column %s of unknown kind %d", desc.Name, desc.Kind)
	}
}

func newBuilder[V any](desc hiero.ColumnDescription, capacity int, convert func(interface{}) (V, bool), seal func(baseColumn, []V) hiero.Column) *builder[V] {
	return &builder[V]{
		desc:    desc,
		values:  make([]V, 0, capacity),
		missing: roaring.New(),
		convert: convert,
		seal:    seal,
	}
}

// Description returns the name and kind of the column under construction
func (b *builder[V]) Description() hiero.ColumnDescription {
	return b.desc
}

// Append adds a value to the end of this column. A nil value is appended as missing.
func (b *builder[V]) Append(value interface{}) error {
	if b.sealed {
		return errors.SealedColumnError{Name: b.desc.Name}
	}
	if value == nil {
		return b.AppendMissing()
	}
	v, ok := b.convert(value)
	if !ok {
		return errors.UnsupportedValueError{Name: b.desc.Name, Kind: b.desc.Kind.String(), Value: value}
	}
	b.values = append(b.values, v)
	return nil
}

// AppendMissing adds a missing value to the end of this column
func (b *builder[V]) AppendMissing() error {
	if b.sealed {
		return errors.SealedColumnError{Name: b.desc.Name}
	}
	var zero V
	b.missing.Add(uint32(len(b.values)))
	b.values = append(b.values, zero)
	return nil
}

// Seal irreversibly freezes this column, returning the immutable result
func (b *builder[V]) Seal() (hiero.Column, error) {
	if b.sealed {
		return nil, errors.SealedColumnError{Name: b.desc.Name}
	}
	b.sealed = true
	base := baseColumn{desc: b.desc, size: len(b.values)}
	if !b.missing.IsEmpty() {
		b.missing.RunOptimize()
		base.missing = b.missing
	}
	col := b.seal(base, b.values)
	b.values = nil
	b.missing = nil
	return col, nil
}

// IsSealed returns true iff Seal has been called
func (b *builder[V]) IsSealed() bool {
	return b.sealed
}

// FromValues builds a sealed Column from a list of values, in which nil denotes a missing value
func FromValues(desc hiero.ColumnDescription, values ...interface{}) (hiero.Column, error) {
	b, err := NewBuilderWithCapacity(desc, len(values))
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err = b.Append(v); err != nil {
			return nil, err
		}
	}
	return b.Seal()
}

// Ints builds a sealed Integer Column with no missing values. values is copied.
func Ints(name string, values ...int) hiero.Column {
	return &intColumn{baseColumn: baseColumn{desc: hiero.ColumnDescription{Name: name, Kind: hiero.IntegerKind}, size: len(values)}, values: clone(values)}
}

// Doubles builds a sealed Double Column with no missing values. values is copied.
func Doubles(name string, values ...float64) hiero.Column {
	return &doubleColumn{baseColumn: baseColumn{desc: hiero.ColumnDescription{Name: name, Kind: hiero.DoubleKind}, size: len(values)}, values: clone(values)}
}

// Strings builds a sealed String Column with no missing values. values is copied.
func Strings(name string, values ...string) hiero.Column {
	return &stringColumn{baseColumn: baseColumn{desc: hiero.ColumnDescription{Name: name, Kind: hiero.StringKind}, size: len(values)}, values: clone(values)}
}

// Categories builds a sealed Category Column with no missing values
func Categories(name string, values ...string) hiero.Column {
	return encode(baseColumn{desc: hiero.ColumnDescription{Name: name, Kind: hiero.CategoryKind}, size: len(values)}, values)
}

// Dates builds a sealed Date Column with no missing values. values is copied.
func Dates(name string, values ...time.Time) hiero.Column {
	return &dateColumn{baseColumn: baseColumn{desc: hiero.ColumnDescription{Name: name, Kind: hiero.DateKind}, size: len(values)}, values: clone(values)}
}

func clone[V any](values []V) []V {
	result := make([]V, len(values))
	copy(result, values)
	return result
}

// MissingCount returns the number of missing values in a Column produced by this package,
// computing it row by row for any other Column
func MissingCount(col hiero.Column) (int, error) {
	if counter, ok := col.(interface{ MissingCount() int }); ok {
		return counter.MissingCount(), nil
	}
	count := 0
	for i := 0; i < col.SizeInRows(); i++ {
		missing, err := col.IsMissing(i)
		if err != nil {
			return 0, err
		}
		if missing {
			count++
		}
	}
	return count, nil
}
