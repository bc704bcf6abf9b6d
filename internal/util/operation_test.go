package util

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-sif/hiero"
	"github.com/stretchr/testify/require"
)

type panickySketch struct{}

func (s panickySketch) Zero() int {
	return 0
}

func (s panickySketch) Create(data int) (int, error) {
	if data < 0 {
		panic(fmt.Errorf("negative"))
	}
	return data, nil
}

func (s panickySketch) Add(left int, right int) (int, error) {
	panic("cannot add")
}

func TestSafeApplyRecoversPanics(t *testing.T) {
	m := hiero.MapFunc[int, int](func(data int) (int, error) {
		var arr []int
		return arr[data], nil
	})
	_, err := SafeApply[int, int](m, 3)
	require.NotNil(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "Map Panic"))
}

func TestSafeApplyWrapsErrors(t *testing.T) {
	inner := fmt.Errorf("boom")
	m := hiero.MapFunc[int, int](func(data int) (int, error) {
		return 0, inner
	})
	_, err := SafeApply[int, int](m, 3)
	require.ErrorIs(t, err, inner)
}

func TestSafeCreateAndAdd(t *testing.T) {
	v, err := SafeCreate[int, int](panickySketch{}, 4)
	require.Nil(t, err)
	require.Equal(t, 4, v)
	_, err = SafeCreate[int, int](panickySketch{}, -1)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "negative")
	_, err = SafeAdd[int, int](panickySketch{}, 1, 2)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "cannot add")
}

func TestNewIDUnique(t *testing.T) {
	require.NotEqual(t, NewID(), NewID())
}
