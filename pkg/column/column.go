// Package column provides immutable, typed column buffers.
//
// A column is a fixed-length sequence of values of one DataType, each either
// present or null. Nulls are tracked in an LSB-ordered validity bitmap laid
// out the way Arrow lays it out: bit i set means row i holds a value.
//
// Columns know nothing about schemas. Any column may hold nulls; whether a
// null is legal is decided when the column is assembled into a batch.
//
// Basic usage:
//
//	ids := column.Int64s(1, 2, 3)
//	ages := column.NewInt64([]column.Optional[int64]{
//		column.Some[int64](30),
//		column.Some[int64](25),
//		column.Null[int64](),
//	})
package column

import (
	"github.com/apache/arrow-go/v18/arrow/bitutil"

	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// NullString is how a null value is rendered by ValueString.
const NullString = "null"

// Column is the uniform handle over every concrete column type. The set of
// implementations is closed: only this package can satisfy the interface.
type Column interface {
	// DataType returns the type tag of the values.
	DataType() schema.DataType
	// Len returns the number of rows.
	Len() int
	// IsNull reports whether row i is null.
	IsNull(i int) bool
	// IsValid reports whether row i holds a value.
	IsValid(i int) bool
	// NullCount returns the number of null rows.
	NullCount() int
	// FirstNull returns the index of the first null row, or -1.
	FirstNull() int
	// Value returns row i boxed in its host type, or nil when null.
	Value(i int) any
	// ValueString renders row i for display; nulls render as NullString.
	ValueString(i int) string
	// MemoryUsage estimates the bytes held by the column's buffers.
	MemoryUsage() int64

	sealed()
}

// Optional is a value that may be absent.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// Null returns an absent value.
func Null[T any]() Optional[T] {
	return Optional[T]{}
}

// buffer is the storage shared by all concrete columns.
type buffer[T any] struct {
	values []T
	// validity is nil when the column has no nulls.
	validity []byte
	nulls    int
}

func newBuffer[T any](in []Optional[T]) buffer[T] {
	n := len(in)
	values := make([]T, n)
	validity := make([]byte, bitutil.BytesForBits(int64(n)))
	for i, v := range in {
		if v.Valid {
			values[i] = v.Value
			bitutil.SetBit(validity, i)
		}
	}

	nulls := n - bitutil.CountSetBits(validity, 0, n)
	if nulls == 0 {
		validity = nil
	}
	return buffer[T]{values: values, validity: validity, nulls: nulls}
}

func presentBuffer[T any](in []T) buffer[T] {
	values := make([]T, len(in))
	copy(values, in)
	return buffer[T]{values: values}
}

func (b *buffer[T]) Len() int { return len(b.values) }

func (b *buffer[T]) IsNull(i int) bool {
	if i < 0 || i >= len(b.values) {
		panic("column: index out of range")
	}
	return b.validity != nil && !bitutil.BitIsSet(b.validity, i)
}

func (b *buffer[T]) IsValid(i int) bool { return !b.IsNull(i) }

func (b *buffer[T]) NullCount() int { return b.nulls }

func (b *buffer[T]) FirstNull() int {
	if b.nulls == 0 {
		return -1
	}
	for i := range b.values {
		if !bitutil.BitIsSet(b.validity, i) {
			return i
		}
	}
	return -1
}

// Values returns a copy of the raw values. Null rows hold the zero value.
func (b *buffer[T]) Values() []T {
	out := make([]T, len(b.values))
	copy(out, b.values)
	return out
}

func (b *buffer[T]) validityBytes() int64 { return int64(len(b.validity)) }

func (b *buffer[T]) sealed() {}

// IsNil reports whether c is nil or a nil pointer to a concrete column.
func IsNil(c Column) bool {
	switch col := c.(type) {
	case nil:
		return true
	case *Int64Column:
		return col == nil
	case *Utf8Column:
		return col == nil
	case *Float64Column:
		return col == nil
	case *BoolColumn:
		return col == nil
	case *TimestampColumn:
		return col == nil
	default:
		return false
	}
}
