package sketches

import (
	"github.com/go-sif/hiero"
)

// CountResult is the number of rows counted by a CountSketch
type CountResult struct {
	Count int
}

// ToValue represents a CountResult as a plain number
func (c *CountResult) ToValue() interface{} {
	return c.Count
}

// CountSketch counts the rows of a Table
type CountSketch struct{}

// Count creates a CountSketch
func Count() *CountSketch {
	return &CountSketch{}
}

// Zero returns a zero count
func (s *CountSketch) Zero() *CountResult {
	return &CountResult{}
}

// Create counts the member rows of t
func (s *CountSketch) Create(t hiero.Table) (*CountResult, error) {
	return &CountResult{Count: t.NumRows()}, nil
}

// Add sums two counts
func (s *CountSketch) Add(left *CountResult, right *CountResult) (*CountResult, error) {
	return &CountResult{Count: left.Count + right.Count}, nil
}

// Initialize returns an EmptyWorkspace
func (s *CountSketch) Initialize(t hiero.Table) (*EmptyWorkspace, error) {
	return &EmptyWorkspace{}, nil
}

// CreateWithWorkspace counts the member rows of t
func (s *CountSketch) CreateWithWorkspace(t hiero.Table, workspace *EmptyWorkspace) (*CountResult, error) {
	return s.Create(t)
}

// Columns returns no columns
func (s *CountSketch) Columns() []string {
	return []string{}
}

// Refresh does nothing
func (s *CountSketch) Refresh(t hiero.Table, workspace *EmptyWorkspace) error {
	return nil
}

// Increment counts a single row
func (s *CountSketch) Increment(workspace *EmptyWorkspace, result *CountResult, row int) error {
	result.Count++
	return nil
}
