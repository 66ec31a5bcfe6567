// Package arrowconv moves record batches across the Apache Arrow boundary.
//
// Arrow is how batches reach the rest of an engine: scans produce Arrow
// records and operators consume them. Imports always go through
// batch.Assemble, so an Arrow record is held to the same invariants as a
// batch built by hand.
package arrowconv

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// TimestampType is the Arrow type timestamps are exported as.
var TimestampType = &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}

// DataTypeToArrow maps a column type to its Arrow counterpart.
func DataTypeToArrow(dt schema.DataType) (arrow.DataType, error) {
	switch dt {
	case schema.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case schema.Utf8:
		return arrow.BinaryTypes.String, nil
	case schema.Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case schema.Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case schema.Timestamp:
		return TimestampType, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeCapability, "no arrow type for %s", dt).
			WithDetail(errors.DetailActual, dt.String())
	}
}

// DataTypeFromArrow maps an Arrow type to a column type. Timestamps of any
// unit or zone are accepted.
func DataTypeFromArrow(dt arrow.DataType) (schema.DataType, error) {
	switch dt.ID() {
	case arrow.INT64:
		return schema.Int64, nil
	case arrow.STRING:
		return schema.Utf8, nil
	case arrow.FLOAT64:
		return schema.Float64, nil
	case arrow.BOOL:
		return schema.Bool, nil
	case arrow.TIMESTAMP:
		return schema.Timestamp, nil
	default:
		return schema.Invalid, errors.Newf(errors.ErrorTypeCapability, "unsupported arrow type %s", dt).
			WithDetail(errors.DetailActual, dt.String())
	}
}

// SchemaToArrow converts s. It fails only for a field whose type has no Arrow
// mapping, which NewField never produces.
func SchemaToArrow(s *schema.Schema) (*arrow.Schema, error) {
	fields := make([]arrow.Field, s.NumFields())
	for i, f := range s.Fields() {
		dt, err := DataTypeToArrow(f.DataType())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeCapability, "field "+f.Name())
		}
		fields[i] = arrow.Field{Name: f.Name(), Type: dt, Nullable: f.Nullable()}
	}
	return arrow.NewSchema(fields, nil), nil
}

// SchemaFromArrow converts an Arrow schema.
func SchemaFromArrow(as *arrow.Schema) (*schema.Schema, error) {
	fields := make([]schema.Field, as.NumFields())
	for i, af := range as.Fields() {
		dt, err := DataTypeFromArrow(af.Type)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeCapability, "field "+af.Name).
				WithDetail(errors.DetailIndex, i).
				WithDetail(errors.DetailField, af.Name)
		}
		f, err := schema.NewField(af.Name, dt, af.Nullable)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return schema.New(fields...), nil
}

// ToArrow copies b into a new Arrow record allocated from mem. The caller
// owns the record and must Release it.
func ToArrow(mem memory.Allocator, b *batch.RecordBatch) (arrow.Record, error) {
	as, err := SchemaToArrow(b.Schema())
	if err != nil {
		return nil, err
	}

	rb := array.NewRecordBuilder(mem, as)
	defer rb.Release()

	for i, c := range b.Columns() {
		if err := appendColumn(rb.Field(i), c); err != nil {
			return nil, err
		}
	}
	return rb.NewRecord(), nil
}

func appendColumn(bldr array.Builder, c column.Column) error {
	bldr.Reserve(c.Len())
	switch col := c.(type) {
	case *column.Int64Column:
		ib := bldr.(*array.Int64Builder)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				ib.AppendNull()
			} else {
				ib.Append(col.Int64Value(i))
			}
		}
	case *column.Utf8Column:
		sb := bldr.(*array.StringBuilder)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				sb.AppendNull()
			} else {
				sb.Append(col.StringValue(i))
			}
		}
	case *column.Float64Column:
		fb := bldr.(*array.Float64Builder)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				fb.AppendNull()
			} else {
				fb.Append(col.Float64Value(i))
			}
		}
	case *column.BoolColumn:
		bb := bldr.(*array.BooleanBuilder)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				bb.AppendNull()
			} else {
				bb.Append(col.BoolValue(i))
			}
		}
	case *column.TimestampColumn:
		tb := bldr.(*array.TimestampBuilder)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				tb.AppendNull()
			} else {
				tb.Append(arrow.Timestamp(col.Micros(i)))
			}
		}
	default:
		return errors.Newf(errors.ErrorTypeCapability, "cannot export %T", c)
	}
	return nil
}

// FromArrow copies rec into a record batch using the default assembler.
// The record is not retained.
func FromArrow(rec arrow.Record) (*batch.RecordBatch, error) {
	s, cols, err := importRecord(rec)
	if err != nil {
		return nil, err
	}
	return batch.Assemble(s, cols)
}

func importRecord(rec arrow.Record) (*schema.Schema, []column.Column, error) {
	s, err := SchemaFromArrow(rec.Schema())
	if err != nil {
		return nil, nil, err
	}
	cols := make([]column.Column, rec.NumCols())
	for i := range cols {
		c, err := importArray(rec.Column(i))
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.TypeOf(err), "column "+rec.ColumnName(i)).
				WithDetail(errors.DetailIndex, i)
		}
		cols[i] = c
	}
	return s, cols, nil
}

func importArray(arr arrow.Array) (column.Column, error) {
	switch a := arr.(type) {
	case *array.Int64:
		return column.NewInt64(collect(a, a.Value)), nil
	case *array.String:
		return column.NewUtf8(collect(a, a.Value)), nil
	case *array.Float64:
		return column.NewFloat64(collect(a, a.Value)), nil
	case *array.Boolean:
		return column.NewBool(collect(a, a.Value)), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return column.NewTimestamp(collect(a, func(i int) time.Time {
			return a.Value(i).ToTime(unit)
		})), nil
	default:
		return nil, errors.Newf(errors.ErrorTypeCapability, "unsupported arrow array %s", arr.DataType()).
			WithDetail(errors.DetailActual, arr.DataType().String())
	}
}

func collect[T any](arr arrow.Array, value func(int) T) []column.Optional[T] {
	out := make([]column.Optional[T], arr.Len())
	for i := range out {
		if arr.IsValid(i) {
			out[i] = column.Some(value(i))
		}
	}
	return out
}
