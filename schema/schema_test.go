package schema

import (
	"testing"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", hiero.StringKind)
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", hiero.DoubleKind)
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", hiero.StringKind)
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", hiero.DoubleKind)
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityDifferentKind(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", hiero.StringKind)
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", hiero.CategoryKind)
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", hiero.DoubleKind)
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", hiero.StringKind)
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", hiero.StringKind)
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", hiero.DoubleKind)
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestDuplicateColumn(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateColumn("col1", hiero.IntegerKind)
	require.Nil(t, err)
	_, err = s.CreateColumn("col1", hiero.DoubleKind)
	require.NotNil(t, err)
	_, ok := err.(errors.DuplicateColumnError)
	require.True(t, ok)
	require.Equal(t, 1, s.NumColumns())
}

func TestColumnNamesInIndexOrder(t *testing.T) {
	s, err := FromDescriptions(
		hiero.ColumnDescription{Name: "Name", Kind: hiero.StringKind},
		hiero.ColumnDescription{Name: "Age", Kind: hiero.IntegerKind},
		hiero.ColumnDescription{Name: "Salary", Kind: hiero.DoubleKind},
	)
	require.Nil(t, err)
	require.Equal(t, []string{"Name", "Age", "Salary"}, s.ColumnNames())
	desc, err := s.GetDescription("Age")
	require.Nil(t, err)
	require.Equal(t, hiero.IntegerKind, desc.Kind)
	require.True(t, s.HasColumn("Salary"))
	require.False(t, s.HasColumn("salary"))
}

func TestProject(t *testing.T) {
	s, err := FromDescriptions(
		hiero.ColumnDescription{Name: "Name", Kind: hiero.StringKind},
		hiero.ColumnDescription{Name: "Age", Kind: hiero.IntegerKind},
	)
	require.Nil(t, err)
	projected, err := s.Project("Age")
	require.Nil(t, err)
	require.Equal(t, []string{"Age"}, projected.ColumnNames())
	// the original is unchanged
	require.Equal(t, 2, s.NumColumns())

	_, err = s.Project("Age", "Height")
	require.NotNil(t, err)
	missing, ok := err.(errors.MissingColumnError)
	require.True(t, ok)
	require.Equal(t, "Height", missing.Name)
}

func TestClone(t *testing.T) {
	s, err := FromDescriptions(hiero.ColumnDescription{Name: "Name", Kind: hiero.StringKind})
	require.Nil(t, err)
	clone := s.Clone()
	_, err = clone.CreateColumn("Age", hiero.IntegerKind)
	require.Nil(t, err)
	require.Equal(t, 1, s.NumColumns())
	require.Equal(t, 2, clone.NumColumns())
	require.NotNil(t, s.Equals(clone))
}

func TestForEachColumn(t *testing.T) {
	s, err := FromDescriptions(
		hiero.ColumnDescription{Name: "a", Kind: hiero.StringKind},
		hiero.ColumnDescription{Name: "b", Kind: hiero.DateKind},
	)
	require.Nil(t, err)
	seen := make([]string, 0)
	err = s.ForEachColumn(func(desc hiero.ColumnDescription) error {
		seen = append(seen, desc.Name)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b"}, seen)
}
