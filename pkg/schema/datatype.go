package schema

import (
	"strings"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
)

// DataType is the runtime type tag of a field and of the column bound to it.
// The set is closed: every switch over DataType in LambdaDB is exhaustive.
type DataType int

const (
	// Invalid is the zero value and is never accepted by NewField.
	Invalid DataType = iota
	// Int64 holds signed 64-bit integers.
	Int64
	// Utf8 holds UTF-8 text.
	Utf8
	// Float64 holds IEEE-754 double precision floats.
	Float64
	// Bool holds booleans.
	Bool
	// Timestamp holds instants as microseconds since the Unix epoch, UTC.
	Timestamp
)

var dataTypeNames = map[DataType]string{
	Int64:     "Int64",
	Utf8:      "Utf8",
	Float64:   "Float64",
	Bool:      "Bool",
	Timestamp: "Timestamp",
}

var dataTypeAliases = map[string]DataType{
	"int64":     Int64,
	"bigint":    Int64,
	"long":      Int64,
	"utf8":      Utf8,
	"string":    Utf8,
	"text":      Utf8,
	"float64":   Float64,
	"double":    Float64,
	"bool":      Bool,
	"boolean":   Bool,
	"timestamp": Timestamp,
}

// String returns the canonical type name.
func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return "Invalid"
}

// IsSupported reports whether t is one of the concrete column types.
func (t DataType) IsSupported() bool {
	_, ok := dataTypeNames[t]
	return ok
}

// SupportedTypes lists the concrete column types in declaration order.
func SupportedTypes() []DataType {
	return []DataType{Int64, Utf8, Float64, Bool, Timestamp}
}

// ParseDataType maps a type name, case-insensitively, to its DataType.
func ParseDataType(name string) (DataType, error) {
	if t, ok := dataTypeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return Invalid, errors.Newf(errors.ErrorTypeValidation, "unknown data type %q", name).
		WithDetail(errors.DetailActual, name)
}
