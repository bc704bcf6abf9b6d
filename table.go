package hiero

// Membership describes which rows of a Table are logically present. Rows are
// physical indices into the Table's Columns, in [0, Max()).
type Membership interface {
	Size() int                               // Size returns the number of member rows
	Max() int                                // Max returns the exclusive upper bound on member rows (the physical row count)
	IsMember(row int) bool                   // IsMember returns true iff the given row is present
	ForEachRow(fn func(row int) error) error // ForEachRow iterates over member rows in increasing order, stopping at the first error
	Rows() []int                             // Rows returns all member rows in increasing order
}

// A Table is a Schema, a set of Columns of equal length, and a Membership
// describing which rows are logically present. Tables are the usual contents
// of a Dataset partition. Lazy Tables fetch Columns from a ColumnLoader on first
// access and cache them; Tables derived from one another share that cache.
type Table interface {
	ID() string                                            // ID returns a unique identifier for this Table
	Schema() Schema                                        // Schema returns the Schema of this Table
	NumRows() int                                          // NumRows returns the number of logically present rows
	Membership() Membership                                // Membership returns the set of logically present rows
	GetColumn(colName string) (Column, error)              // GetColumn returns a single Column, loading it if necessary
	GetLoadedColumns(colNames ...string) ([]Column, error) // GetLoadedColumns returns several Columns, loading all missing ones with a single loader call
	SelectRows(rows Membership) (Table, error)             // SelectRows returns a Table restricted to the given rows, sharing column storage
	Project(colNames ...string) (Table, error)             // Project returns a Table restricted to the given columns, sharing column storage
}
