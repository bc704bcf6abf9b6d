package sketches

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/hiero"
)

// DoubleBuckets divides the numeric range [min, max] into count buckets of equal width.
// The maximum value belongs to the last bucket.
type DoubleBuckets struct {
	column string
	min    float64
	max    float64
	count  int
}

// NewDoubleBuckets is a factory for DoubleBuckets
func NewDoubleBuckets(column string, min float64, max float64, count int) (*DoubleBuckets, error) {
	if count < 1 {
		return nil, fmt.Errorf("Bucket count must be positive, got %d", count)
	}
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, fmt.Errorf("Bucket range [%v, %v] is not a number", min, max)
	}
	if max < min {
		return nil, fmt.Errorf("Bucket range [%v, %v] is empty", min, max)
	}
	return &DoubleBuckets{column: column, min: min, max: max, count: count}, nil
}

// Column returns the name of the column this bucketing function reads
func (b *DoubleBuckets) Column() string {
	return b.column
}

// NumBuckets returns the number of buckets
func (b *DoubleBuckets) NumBuckets() int {
	return b.count
}

// IndexOf returns the bucket of the value in row, or -1 if it is missing or out of range
func (b *DoubleBuckets) IndexOf(col hiero.Column, row int) (int, error) {
	if missing, err := col.IsMissing(row); err != nil || missing {
		return -1, err
	}
	v, err := col.AsDouble(row)
	if err != nil {
		return -1, err
	}
	if math.IsNaN(v) || v < b.min || v > b.max {
		return -1, nil
	}
	if b.max == b.min {
		return 0, nil
	}
	idx := int((v - b.min) / (b.max - b.min) * float64(b.count))
	if idx >= b.count {
		idx = b.count - 1
	}
	return idx, nil
}

// ExplicitBuckets divides numeric values into half-open buckets [b_i, b_i+1) between sorted boundaries
type ExplicitBuckets struct {
	column     string
	boundaries []float64
}

// NewExplicitBuckets is a factory for ExplicitBuckets. There must be at least two strictly increasing boundaries.
func NewExplicitBuckets(column string, boundaries ...float64) (*ExplicitBuckets, error) {
	if len(boundaries) < 2 {
		return nil, fmt.Errorf("At least two bucket boundaries are required, got %d", len(boundaries))
	}
	for i := 1; i < len(boundaries); i++ {
		if !(boundaries[i] > boundaries[i-1]) {
			return nil, fmt.Errorf("Bucket boundaries must be strictly increasing: %v", boundaries)
		}
	}
	b := make([]float64, len(boundaries))
	copy(b, boundaries)
	return &ExplicitBuckets{column: column, boundaries: b}, nil
}

// Column returns the name of the column this bucketing function reads
func (b *ExplicitBuckets) Column() string {
	return b.column
}

// NumBuckets returns the number of buckets
func (b *ExplicitBuckets) NumBuckets() int {
	return len(b.boundaries) - 1
}

// IndexOf returns the bucket of the value in row, or -1 if it is missing or out of range
func (b *ExplicitBuckets) IndexOf(col hiero.Column, row int) (int, error) {
	if missing, err := col.IsMissing(row); err != nil || missing {
		return -1, err
	}
	v, err := col.AsDouble(row)
	if err != nil {
		return -1, err
	}
	if math.IsNaN(v) || v < b.boundaries[0] || v >= b.boundaries[len(b.boundaries)-1] {
		return -1, nil
	}
	// index of the first boundary strictly greater than v
	idx := sort.Search(len(b.boundaries), func(i int) bool { return b.boundaries[i] > v })
	return idx - 1, nil
}

// StringBuckets divides string values into buckets [b_i, b_i+1) between sorted boundaries.
// The last bucket is open-ended.
type StringBuckets struct {
	column     string
	boundaries []string
}

// NewStringBuckets is a factory for StringBuckets. There must be at least one boundary, and
// boundaries must be strictly increasing.
func NewStringBuckets(column string, boundaries ...string) (*StringBuckets, error) {
	if len(boundaries) < 1 {
		return nil, fmt.Errorf("At least one bucket boundary is required")
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("Bucket boundaries must be strictly increasing: %v", boundaries)
		}
	}
	b := make([]string, len(boundaries))
	copy(b, boundaries)
	return &StringBuckets{column: column, boundaries: b}, nil
}

// Column returns the name of the column this bucketing function reads
func (b *StringBuckets) Column() string {
	return b.column
}

// NumBuckets returns the number of buckets
func (b *StringBuckets) NumBuckets() int {
	return len(b.boundaries)
}

// IndexOf returns the bucket of the value in row, or -1 if it is missing or precedes the first boundary
func (b *StringBuckets) IndexOf(col hiero.Column, row int) (int, error) {
	if missing, err := col.IsMissing(row); err != nil || missing {
		return -1, err
	}
	v, err := col.GetString(row)
	if err != nil {
		return -1, err
	}
	idx := sort.Search(len(b.boundaries), func(i int) bool { return b.boundaries[i] > v })
	return idx - 1, nil
}

// HashBuckets assigns values to buckets by hashing them
type HashBuckets struct {
	column string
	count  int
}

// NewHashBuckets is a factory for HashBuckets
func NewHashBuckets(column string, count int) (*HashBuckets, error) {
	if count < 1 {
		return nil, fmt.Errorf("Bucket count must be positive, got %d", count)
	}
	return &HashBuckets{column: column, count: count}, nil
}

// Column returns the name of the column this bucketing function reads
func (b *HashBuckets) Column() string {
	return b.column
}

// NumBuckets returns the number of buckets
func (b *HashBuckets) NumBuckets() int {
	return b.count
}

// IndexOf returns the bucket of the value in row, or -1 if it is missing
func (b *HashBuckets) IndexOf(col hiero.Column, row int) (int, error) {
	if missing, err := col.IsMissing(row); err != nil || missing {
		return -1, err
	}
	var key string
	switch col.Kind() {
	case hiero.StringKind, hiero.CategoryKind:
		s, err := col.GetString(row)
		if err != nil {
			return -1, err
		}
		key = s
	case hiero.IntegerKind:
		v, err := col.GetInt(row)
		if err != nil {
			return -1, err
		}
		key = strconv.Itoa(v)
	default:
		v, err := col.AsDouble(row)
		if err != nil {
			return -1, err
		}
		key = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return int(xxhash.Sum64String(key) % uint64(b.count)), nil
}
