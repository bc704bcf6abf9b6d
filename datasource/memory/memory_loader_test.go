package memory

import (
	"testing"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/column"
	"github.com/go-sif/hiero/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestLoadColumnsInRequestOrder(t *testing.T) {
	loader, err := CreateLoader("people", column.Strings("Name", "Mike", "John"), column.Ints("Age", 20, 30))
	require.Nil(t, err)
	var fl hiero.FileLoader = loader
	cols, err := fl.LoadColumns([]string{"Age", "Name"})
	require.Nil(t, err)
	require.Equal(t, "Age", cols[0].Description().Name)
	require.Equal(t, "Name", cols[1].Description().Name)
	require.Equal(t, 1, loader.Invocations())
	require.True(t, loader.SizeInBytes() > 0)
}

func TestLoadUnknownColumns(t *testing.T) {
	loader, err := CreateLoader("people", column.Strings("Name", "Mike"))
	require.Nil(t, err)
	_, err = loader.LoadColumns([]string{"Age", "Name", "Height"})
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	_, ok = merr.Errors[0].(errors.MissingColumnError)
	require.True(t, ok)
}

func TestCreateLoaderShapeMismatch(t *testing.T) {
	_, err := CreateLoader("bad", column.Strings("Name", "Mike"), column.Ints("Age", 20, 30), column.Ints("Name", 1))
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	// Age has the wrong length, Name is duplicated
	require.Len(t, merr.Errors, 2)
}
