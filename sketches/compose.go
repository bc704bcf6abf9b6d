package sketches

import (
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// Composed holds the results of several sketches evaluated together
type Composed[R any] struct {
	Results []R
}

// ToValue represents a Composed result as a list
func (c *Composed[R]) ToValue() interface{} {
	values := make([]interface{}, len(c.Results))
	for i, r := range c.Results {
		values[i] = toValue(r)
	}
	return values
}

// ComposedWorkspace holds the workspaces of several sketches
type ComposedWorkspace[W any] struct {
	Workspaces []W
}

// ComposedSketch evaluates several sketches of the same type in a single pass
type ComposedSketch[R, W any] struct {
	sketches []hiero.IncrementalTableSketch[R, W]
}

// Compose creates a ComposedSketch
func Compose[R, W any](sketches ...hiero.IncrementalTableSketch[R, W]) *ComposedSketch[R, W] {
	return &ComposedSketch[R, W]{sketches: sketches}
}

// Zero returns the zeros of every composed sketch
func (s *ComposedSketch[R, W]) Zero() *Composed[R] {
	results := make([]R, len(s.sketches))
	for i, sk := range s.sketches {
		results[i] = sk.Zero()
	}
	return &Composed[R]{Results: results}
}

// Create evaluates every composed sketch over t
func (s *ComposedSketch[R, W]) Create(t hiero.Table) (*Composed[R], error) {
	return createOnce[*Composed[R], *ComposedWorkspace[W]](s, t)
}

// Add combines composed results position by position
func (s *ComposedSketch[R, W]) Add(left *Composed[R], right *Composed[R]) (*Composed[R], error) {
	if len(left.Results) != len(right.Results) || len(left.Results) != len(s.sketches) {
		return nil, errors.ShapeMismatchError{What: "composed results", Expected: len(left.Results), Actual: len(right.Results)}
	}
	results := make([]R, len(s.sketches))
	for i, sk := range s.sketches {
		r, err := sk.Add(left.Results[i], right.Results[i])
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return &Composed[R]{Results: results}, nil
}

// Initialize loads every column read by any composed sketch at once, and initializes each sketch
func (s *ComposedSketch[R, W]) Initialize(t hiero.Table) (*ComposedWorkspace[W], error) {
	if _, err := t.GetLoadedColumns(s.Columns()...); err != nil {
		return nil, err
	}
	workspaces := make([]W, len(s.sketches))
	for i, sk := range s.sketches {
		w, err := sk.Initialize(t)
		if err != nil {
			return nil, err
		}
		workspaces[i] = w
	}
	return &ComposedWorkspace[W]{Workspaces: workspaces}, nil
}

// CreateWithWorkspace evaluates every composed sketch over t, reusing their workspaces
func (s *ComposedSketch[R, W]) CreateWithWorkspace(t hiero.Table, workspace *ComposedWorkspace[W]) (*Composed[R], error) {
	return createIncrementally[*Composed[R], *ComposedWorkspace[W]](s, t, workspace)
}

// Columns returns every column read by any composed sketch, without duplicates
func (s *ComposedSketch[R, W]) Columns() []string {
	cols := make([]string, 0)
	for _, sk := range s.sketches {
		cols = appendUnique(cols, sk.Columns()...)
	}
	return cols
}

// Refresh readies the workspace of every composed sketch
func (s *ComposedSketch[R, W]) Refresh(t hiero.Table, workspace *ComposedWorkspace[W]) error {
	for i, sk := range s.sketches {
		if err := sk.Refresh(t, workspace.Workspaces[i]); err != nil {
			return err
		}
	}
	return nil
}

// Increment folds a single row into every composed result
func (s *ComposedSketch[R, W]) Increment(workspace *ComposedWorkspace[W], result *Composed[R], row int) error {
	for i, sk := range s.sketches {
		if err := sk.Increment(workspace.Workspaces[i], result.Results[i], row); err != nil {
			return err
		}
	}
	return nil
}

func appendUnique(cols []string, more ...string) []string {
	for _, c := range more {
		found := false
		for _, existing := range cols {
			if existing == c {
				found = true
				break
			}
		}
		if !found {
			cols = append(cols, c)
		}
	}
	return cols
}
