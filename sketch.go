package hiero

// A Sketch computes a partial result for each partition of a Dataset, and combines
// partial results pairwise into a single result. Results must form a commutative
// monoid: Add(Zero(), x) == x == Add(x, Zero()), and Add is associative. This is
// what allows a Sketch to produce the same result however the data is partitioned.
// Implementations must not modify the arguments to Add.
type Sketch[T, R any] interface {
	Zero() R                        // Zero returns a fresh identity element
	Create(data T) (R, error)       // Create computes the partial result for a single partition
	Add(left R, right R) (R, error) // Add combines two partial results
}

// A WorkspaceSketch is a Sketch which can carry per-partition state (a workspace)
// between repeated evaluations against the same partition. Workspaces are created
// once per partition and are never combined across partitions.
type WorkspaceSketch[T, R, W any] interface {
	Sketch[T, R]
	Initialize(data T) (W, error)                       // Initialize creates a workspace for a partition
	CreateWithWorkspace(data T, workspace W) (R, error) // CreateWithWorkspace computes a partial result, reusing a workspace
}

// An IncrementalTableSketch is a WorkspaceSketch over Tables which can fold individual rows
// into a mutable result. Group-by layers delegate to IncrementalTableSketches, and
// IncrementalTableSketches nest arbitrarily deep.
type IncrementalTableSketch[R, W any] interface {
	WorkspaceSketch[Table, R, W]
	Columns() []string                              // Columns returns the names of every column read by this sketch
	Refresh(data Table, workspace W) error          // Refresh readies a workspace for this sketch, rebuilding any stale cached state
	Increment(workspace W, result R, row int) error // Increment folds a single row into result, which is modified in place
}

// Buckets is a bucketing function, assigning each row of a Table to one of NumBuckets() buckets
type Buckets interface {
	Column() string                           // Column returns the name of the column this bucketing function reads
	NumBuckets() int                          // NumBuckets returns the number of (non-overflow) buckets
	IndexOf(col Column, row int) (int, error) // IndexOf returns the bucket of the value in row, or -1 if it is missing or out of range
}
