package hiero

// ColumnLoader is the contract storage backends implement to materialize Columns.
// Implementations must be safe to invoke concurrently for disjoint sets of names.
type ColumnLoader interface {
	// LoadColumns returns exactly the requested Columns, sealed, in the order in which they were
	// requested, with rows in table order. It fails if any requested name does not exist.
	LoadColumns(colNames []string) ([]Column, error)
	// SizeInBytes estimates the size of the underlying data, whether or not it has been materialized
	SizeInBytes() int64
}

// FileLoader is a ColumnLoader which also knows the shape of the data it loads,
// and can therefore be used to construct (lazy) Tables.
type FileLoader interface {
	ColumnLoader
	Name() string            // Name returns a human-readable name for the underlying data (e.g. a file path)
	Schema() (Schema, error) // Schema returns the Schema of the underlying data
	NumRows() (int, error)   // NumRows returns the number of rows in the underlying data
}
