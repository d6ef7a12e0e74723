package types

import "strings"

// Field storage types. Each maps to a SQLite column affinity.
const (
	Integer  = "integer"
	Text     = "text"
	Real     = "real"
	Blob     = "blob"
	Boolean  = "boolean"
	DateTime = "datetime"
)

// validFieldTypes is the set of recognized field type values.
var validFieldTypes = map[string]bool{
	Integer:  true,
	Text:     true,
	Real:     true,
	Blob:     true,
	Boolean:  true,
	DateTime: true,
}

// IsValidFieldType reports whether the given string is a recognized field type.
func IsValidFieldType(ft string) bool {
	return validFieldTypes[ft]
}

// ColumnType returns the SQL column type for a field type. Booleans are
// stored as 0/1 integers and datetimes as RFC 3339 text.
func ColumnType(ft string) string {
	switch ft {
	case Integer, Boolean:
		return "INTEGER"
	case Real:
		return "REAL"
	case Blob:
		return "BLOB"
	default:
		return "TEXT"
	}
}

// Field describes one column mapping: a named, typed attribute of a record
// type together with its constraints and auto-populate behavior.
type Field struct {
	Name   string // Attribute name (required, non-empty).
	Column string // Column name override; defaults to Name.
	Type   string // One of the field type constants.

	Key     bool // Primary key: auto-increment integer, at most one per schema.
	Unique  bool // UNIQUE constraint.
	NotNull bool // NOT NULL constraint.

	Default any // Default value applied when a record is built without one.

	// AutoCreate stamps the field with the current time when a record is
	// first inserted; AutoUpdate stamps it on every save. Both are valid
	// only on DateTime fields.
	AutoCreate bool
	AutoUpdate bool
}

// ColumnName returns the column name for the field, falling back to the
// attribute name when no override is set.
func (f Field) ColumnName() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Name
}

// Schema declares a record type as an ordered set of fields. It is the
// explicit description a caller registers with DB.Table; no reflection is
// involved.
type Schema struct {
	Name   string  // Record type name (required, non-empty).
	Table  string  // Table name override; defaults to lower-cased Name.
	Fields []Field // Declared fields, in column order.
}

// TableName returns the table name for the schema, deriving it from the
// record type name when no override is set.
func (s Schema) TableName() string {
	if s.Table != "" {
		return s.Table
	}
	return strings.ToLower(s.Name)
}
