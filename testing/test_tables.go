// Package testing provides Tables and helpers for testing sketches and loaders.
// It is conventionally imported as hierotest.
package testing

import (
	"fmt"
	"math/rand"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
	"github.com/go-sif/hiero/table"
)

// SmallTable returns the three-row table (Mike, 20), (John, 30), (Tom, 10) with
// columns Name (Category) and Age (Integer)
func SmallTable() hiero.Table {
	return mustTable(
		column.Categories("Name", "Mike", "John", "Tom"),
		column.Ints("Age", 20, 30, 10),
	)
}

// TestTable returns a small table with some interesting contents
func TestTable() hiero.Table {
	return mustTable(
		column.Categories("Name", "Mike", "John", "Tom", "Bill", "Bill", "Smith", "Donald", "Bruce",
			"Bob", "Frank", "Richard", "Steve", "Dave"),
		column.Ints("Age", 20, 30, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
	)
}

// TestRepTable returns a small table with some repeated content
func TestRepTable() hiero.Table {
	return mustTable(
		column.Categories("Name", "Mike", "John", "Tom", "Bill", "Bill", "Smith", "Donald", "Bruce",
			"Bob", "Frank", "Richard", "Steve", "Dave", "Mike", "Ed"),
		column.Ints("Age", 20, 30, 10, 10, 20, 30, 20, 30, 10, 40, 40, 20, 10, 50, 60),
	)
}

// IntTable returns a table of numCols Integer columns, named Column0, Column1, ..., with
// pseudo-random values in [0, rangeSize) drawn from seed
func IntTable(seed int64, size int, numCols int, rangeSize int) hiero.Table {
	rn := rand.New(rand.NewSource(seed))
	cols := make([]hiero.Column, numCols)
	for i := range cols {
		values := make([]int, size)
		for j := range values {
			values[j] = rn.Intn(rangeSize)
		}
		cols[i] = column.Ints(fmt.Sprintf("Column%d", i), values...)
	}
	return mustTable(cols...)
}

// MissingIntTable returns a table of numCols Integer columns in which each column is the
// identity, with every multiple of a small per-column modulus missing. Columns are named
// Missing<modulus>_<index>.
func MissingIntTable(seed int64, size int, numCols int) hiero.Table {
	rn := rand.New(rand.NewSource(seed))
	cols := make([]hiero.Column, 0, numCols)
	used := make(map[int]bool)
	for len(cols) < numCols {
		mod := rn.Intn(9) + 1
		if used[mod] && len(used) < 9 {
			continue
		}
		used[mod] = true
		values := make([]interface{}, size)
		for j := range values {
			if j%mod != 0 {
				values[j] = j
			}
		}
		col, err := column.FromValues(hiero.ColumnDescription{Name: fmt.Sprintf("Missing%d_%d", mod, len(cols)), Kind: hiero.IntegerKind}, values...)
		if err != nil {
			panic(err)
		}
		cols = append(cols, col)
	}
	return mustTable(cols...)
}

// CategoryTable returns a table with a single Category column named Category, whose values
// are drawn from names using seed
func CategoryTable(seed int64, size int, names ...string) hiero.Table {
	rn := rand.New(rand.NewSource(seed))
	values := make([]string, size)
	for i := range values {
		values[i] = names[rn.Intn(len(names))]
	}
	return mustTable(column.Categories("Category", values...))
}

func mustTable(cols ...hiero.Column) hiero.Table {
	t, err := table.New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}
