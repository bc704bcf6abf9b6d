package util

import (
	"fmt"

	"github.com/go-sif/hiero"
)

// SafeApply runs a Map against a single partition such that panics are recovered and nice error messages are constructed
func SafeApply[T, S any](m hiero.Map[T, S], data T) (result S, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Map Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Map Panic: %v\n%s", r, GetTrace())
			}
		} else if err != nil {
			err = fmt.Errorf("Map Error: %w", err)
		}
	}()
	result, err = m.Apply(data)
	return
}

// SafeCreate runs a Sketch against a single partition such that panics are recovered and nice error messages are constructed
func SafeCreate[T, R any](s hiero.Sketch[T, R], data T) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Sketch Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Sketch Panic: %v\n%s", r, GetTrace())
			}
		} else if err != nil {
			err = fmt.Errorf("Sketch Error: %w", err)
		}
	}()
	result, err = s.Create(data)
	return
}

// SafeAdd combines two partial Sketch results such that panics are recovered and nice error messages are constructed
func SafeAdd[T, R any](s hiero.Sketch[T, R], left R, right R) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Combine Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Combine Panic: %v\n%s", r, GetTrace())
			}
		} else if err != nil {
			err = fmt.Errorf("Combine Error: %w", err)
		}
	}()
	result, err = s.Add(left, right)
	return
}

// SafeCall runs an arbitrary per-partition function such that panics are recovered and nice error messages are constructed
func SafeCall[S any](name string, fn func() (S, error)) (result S, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("%s Panic: %w\n%s", name, anErr, GetTrace())
			} else {
				err = fmt.Errorf("%s Panic: %v\n%s", name, r, GetTrace())
			}
		} else if err != nil {
			err = fmt.Errorf("%s Error: %w", name, err)
		}
	}()
	result, err = fn()
	return
}
