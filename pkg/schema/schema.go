// Package schema models the shape of a table: an ordered list of named, typed
// fields, each either nullable or not.
//
// Fields and schemas are immutable once built. A *Schema is shared by
// reference between a record batch and anything that inspects it, so none of
// its methods hand out memory that aliases its internal state.
package schema

import (
	"strings"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
)

// Field describes one column of a table.
type Field struct {
	name     string
	dataType DataType
	nullable bool
}

// NewField defines a field. The name must be non-empty and the data type one
// of SupportedTypes.
func NewField(name string, dataType DataType, nullable bool) (Field, error) {
	if name == "" {
		return Field{}, errors.New(errors.ErrorTypeValidation, "field name must not be empty")
	}
	if !dataType.IsSupported() {
		return Field{}, errors.Newf(errors.ErrorTypeValidation, "unsupported data type for field %q", name).
			WithDetail(errors.DetailField, name).
			WithDetail(errors.DetailActual, dataType.String())
	}
	return Field{name: name, dataType: dataType, nullable: nullable}, nil
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// DataType returns the declared column type.
func (f Field) DataType() DataType { return f.dataType }

// Nullable reports whether the field admits null values.
func (f Field) Nullable() bool { return f.nullable }

func (f Field) String() string {
	null := "not null"
	if f.nullable {
		null = "nullable"
	}
	return f.name + ": " + f.dataType.String() + " (" + null + ")"
}

// Schema is an ordered, immutable sequence of fields.
type Schema struct {
	fields []Field
}

// New builds a schema from fields. The slice is copied. Duplicate names are
// permitted; FieldIndex resolves to the first occurrence.
func New(fields ...Field) *Schema {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Schema{fields: fs}
}

// NumFields returns the number of fields.
func (s *Schema) NumFields() int { return len(s.fields) }

// Field returns the field at position i. It panics if i is out of range, like
// a slice index.
func (s *Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the field list.
func (s *Schema) Fields() []Field {
	fs := make([]Field, len(s.fields))
	copy(fs, s.fields)
	return fs
}

// FieldIndex returns the position of the first field named name, or -1.
func (s *Schema) FieldIndex(name string) int {
	for i, f := range s.fields {
		if f.name == name {
			return i
		}
	}
	return -1
}

// Names returns the field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// HasDuplicateNames reports whether two fields share a name.
func (s *Schema) HasDuplicateNames() bool {
	seen := make(map[string]struct{}, len(s.fields))
	for _, f := range s.fields {
		if _, ok := seen[f.name]; ok {
			return true
		}
		seen[f.name] = struct{}{}
	}
	return false
}

// Equal reports whether both schemas have the same fields in the same order.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || len(s.fields) != len(other.fields) {
		return false
	}
	for i := range s.fields {
		if s.fields[i] != other.fields[i] {
			return false
		}
	}
	return true
}

func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("schema:\n")
	for _, f := range s.fields {
		b.WriteString("  ")
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	return b.String()
}
