package hiero

// Schema is an ordered mapping from unique column names to
// ColumnDescriptions. It is the structural type of a Table.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	HasColumn(colName string) bool
	GetDescription(colName string) (ColumnDescription, error)
	CreateColumn(colName string, kind ContentsKind) (newSchema Schema, err error)
	Project(colNames ...string) (newSchema Schema, err error)
	ColumnNames() []string
	Descriptions() []ColumnDescription
	ForEachColumn(fn func(desc ColumnDescription) error) error
}
