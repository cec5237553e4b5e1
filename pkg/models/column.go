package models

import "strings"

// ColumnDescriptor is one flattened row of schema metadata as submitted by
// the caller. The engine treats descriptors as immutable input and never
// writes back into them.
type ColumnDescriptor struct {
	TableCatalog  string  `json:"table_catalog"`
	TableSchema   string  `json:"table_schema"`
	TableName     string  `json:"table_name"`
	ColumnName    string  `json:"column_name"`
	FieldPath     string  `json:"field_path,omitempty"`     // Nested-field path, may equal ColumnName
	DataType      string  `json:"data_type,omitempty"`      // e.g. "STRING", "INT64"
	Description   *string `json:"description,omitempty"`    // nil means absent, not an error
	CollationName string  `json:"collation_name,omitempty"` // Optional metadata, not scored
	RoundingMode  string  `json:"rounding_mode,omitempty"`  // Optional metadata, not scored
	PrimaryKey    bool    `json:"primary_key"`
	ForeignKey    bool    `json:"foreign_key"`
}

// TableKey identifies the table a column belongs to. Two descriptors sharing
// a TableKey are part of the same logical table for grouping purposes.
type TableKey struct {
	Catalog string
	Schema  string
	Table   string
}

// Key returns the owning-table identity of the column.
func (c ColumnDescriptor) Key() TableKey {
	return TableKey{
		Catalog: c.TableCatalog,
		Schema:  c.TableSchema,
		Table:   c.TableName,
	}
}

// Identifier returns the name reported for this column in penalty lists.
func (c ColumnDescriptor) Identifier() string {
	return c.ColumnName
}

// ScoringName returns the name evaluated for quality: the nested field path
// when present (it is the more specific of the two), otherwise the column name.
func (c ColumnDescriptor) ScoringName() string {
	if c.FieldPath != "" {
		return c.FieldPath
	}
	return c.ColumnName
}

// DescriptionText returns the trimmed description, or "" when absent.
func (c ColumnDescriptor) DescriptionText() string {
	if c.Description == nil {
		return ""
	}
	return strings.TrimSpace(*c.Description)
}

// HasDescription reports whether the column carries any non-blank description.
func (c ColumnDescriptor) HasDescription() bool {
	return c.DescriptionText() != ""
}
