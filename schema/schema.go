package schema

import (
	"fmt"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// column records the position of a ColumnDescription within a Schema
type column struct {
	idx  int
	kind hiero.ContentsKind
}

// Schema is an ordered mapping from unique column names to
// their kinds. It allows one to obtain descriptions by name,
// define new columns, project, etc.
type schema struct {
	schema map[string]*column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() hiero.Schema {
	return &schema{
		schema: make(map[string]*column),
		names:  make([]string, 0),
	}
}

// FromDescriptions builds a Schema from a list of ColumnDescriptions, in order
func FromDescriptions(descs ...hiero.ColumnDescription) (hiero.Schema, error) {
	s := CreateSchema()
	for _, d := range descs {
		if _, err := s.CreateColumn(d.Name, d.Kind); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent, and otherwise
// an error describing the first difference
func (s *schema) Equals(otherSchema hiero.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	otherNames := otherSchema.ColumnNames()
	for i, name := range s.names {
		if otherNames[i] != name {
			return fmt.Errorf("Column %d is named %s in one schema and %s in the other", i, name, otherNames[i])
		}
		otherDesc, err := otherSchema.GetDescription(name)
		if err != nil {
			return err
		}
		if s.schema[name].kind != otherDesc.Kind {
			return fmt.Errorf("Column %s kinds do not match", name)
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *schema) Clone() hiero.Schema {
	newSchema := make(map[string]*column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = &column{v.idx, v.kind}
	}
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	return &schema{schema: newSchema, names: newNames}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetDescription returns the ColumnDescription of a particular column
func (s *schema) GetDescription(colName string) (desc hiero.ColumnDescription, err error) {
	col, ok := s.schema[colName]
	if !ok {
		err = errors.MissingColumnError{Name: colName}
		return
	}
	desc = hiero.ColumnDescription{Name: colName, Kind: col.kind}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn defines a new column within the Schema
func (s *schema) CreateColumn(colName string, kind hiero.ContentsKind) (newSchema hiero.Schema, err error) {
	_, containsColumn := s.schema[colName]
	if containsColumn {
		err = errors.DuplicateColumnError{Name: colName}
	} else {
		s.schema[colName] = &column{len(s.names), kind}
		s.names = append(s.names, colName)
		newSchema = s
	}
	return
}

// Project returns a new Schema containing only the given columns, in the given order
func (s *schema) Project(colNames ...string) (hiero.Schema, error) {
	newSchema := CreateSchema()
	for _, name := range colNames {
		col, ok := s.schema[name]
		if !ok {
			return nil, errors.MissingColumnError{Name: name}
		}
		if _, err := newSchema.CreateColumn(name, col.kind); err != nil {
			return nil, err
		}
	}
	return newSchema, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Descriptions returns the ColumnDescriptions in the schema, in index order
func (s *schema) Descriptions() []hiero.ColumnDescription {
	descs := make([]hiero.ColumnDescription, len(s.names))
	for i, name := range s.names {
		descs[i] = hiero.ColumnDescription{Name: name, Kind: s.schema[name].kind}
	}
	return descs
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(desc hiero.ColumnDescription) error) error {
	for _, desc := range s.Descriptions() {
		err := fn(desc)
		if err != nil {
			return err
		}
	}
	return nil
}
