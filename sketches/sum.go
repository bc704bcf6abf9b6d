package sketches

import (
	"github.com/go-sif/hiero"
)

// SumResult summarizes a numeric column
type SumResult struct {
	Count   int     // number of present values
	Missing int     // number of missing values
	Sum     float64 // sum of present values
}

// ToValue represents a SumResult as a mapping
func (r *SumResult) ToValue() interface{} {
	return map[string]interface{}{
		"count":   r.Count,
		"missing": r.Missing,
		"sum":     r.Sum,
	}
}

// ColumnWorkspace caches the column read by a sketch for a particular Table
type ColumnWorkspace struct {
	tableID string
	column  hiero.Column
}

// SumSketch sums the values of a numeric column
type SumSketch struct {
	column string
}

// Sum creates a SumSketch over the named column
func Sum(column string) *SumSketch {
	return &SumSketch{column: column}
}

// Zero returns an empty SumResult
func (s *SumSketch) Zero() *SumResult {
	return &SumResult{}
}

// Create sums the column over the member rows of t
func (s *SumSketch) Create(t hiero.Table) (*SumResult, error) {
	return createOnce[*SumResult, *ColumnWorkspace](s, t)
}

// Add combines two SumResults
func (s *SumSketch) Add(left *SumResult, right *SumResult) (*SumResult, error) {
	return &SumResult{
		Count:   left.Count + right.Count,
		Missing: left.Missing + right.Missing,
		Sum:     left.Sum + right.Sum,
	}, nil
}

// Initialize loads the summed column
func (s *SumSketch) Initialize(t hiero.Table) (*ColumnWorkspace, error) {
	workspace := &ColumnWorkspace{}
	if err := s.Refresh(t, workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

// CreateWithWorkspace sums the column over the member rows of t, reusing a loaded column
func (s *SumSketch) CreateWithWorkspace(t hiero.Table, workspace *ColumnWorkspace) (*SumResult, error) {
	return createIncrementally[*SumResult, *ColumnWorkspace](s, t, workspace)
}

// Columns returns the summed column
func (s *SumSketch) Columns() []string {
	return []string{s.column}
}

// Refresh loads the summed column, unless the workspace already holds it for t
func (s *SumSketch) Refresh(t hiero.Table, workspace *ColumnWorkspace) error {
	if workspace.column != nil && workspace.tableID == t.ID() && workspace.column.Description().Name == s.column {
		return nil
	}
	col, err := t.GetColumn(s.column)
	if err != nil {
		return err
	}
	workspace.column = col
	workspace.tableID = t.ID()
	return nil
}

// Increment folds a single row into result
func (s *SumSketch) Increment(workspace *ColumnWorkspace, result *SumResult, row int) error {
	missing, err := workspace.column.IsMissing(row)
	if err != nil {
		return err
	}
	if missing {
		result.Missing++
		return nil
	}
	v, err := workspace.column.AsDouble(row)
	if err != nil {
		return err
	}
	result.Count++
	result.Sum += v
	return nil
}
