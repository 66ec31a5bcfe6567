package column

import (
	"strconv"
	"time"

	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// Int64Column stores signed 64-bit integers.
type Int64Column struct {
	buffer[int64]
}

// NewInt64 builds an Int64 column.
func NewInt64(values []Optional[int64]) *Int64Column {
	return &Int64Column{newBuffer(values)}
}

// Int64s builds an Int64 column with no nulls.
func Int64s(values ...int64) *Int64Column {
	return &Int64Column{presentBuffer(values)}
}

func (c *Int64Column) DataType() schema.DataType { return schema.Int64 }

// Int64Value returns row i. The result is meaningless when the row is null.
func (c *Int64Column) Int64Value(i int) int64 { return c.values[i] }

func (c *Int64Column) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

func (c *Int64Column) ValueString(i int) string {
	if c.IsNull(i) {
		return NullString
	}
	return strconv.FormatInt(c.values[i], 10)
}

func (c *Int64Column) MemoryUsage() int64 {
	return int64(len(c.values)*8) + c.validityBytes()
}

// Utf8Column stores UTF-8 strings.
type Utf8Column struct {
	buffer[string]
}

// NewUtf8 builds a Utf8 column.
func NewUtf8(values []Optional[string]) *Utf8Column {
	return &Utf8Column{newBuffer(values)}
}

// Strings builds a Utf8 column with no nulls.
func Strings(values ...string) *Utf8Column {
	return &Utf8Column{presentBuffer(values)}
}

func (c *Utf8Column) DataType() schema.DataType { return schema.Utf8 }

// StringValue returns row i. The result is meaningless when the row is null.
func (c *Utf8Column) StringValue(i int) string { return c.values[i] }

func (c *Utf8Column) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

func (c *Utf8Column) ValueString(i int) string {
	if c.IsNull(i) {
		return NullString
	}
	return strconv.Quote(c.values[i])
}

func (c *Utf8Column) MemoryUsage() int64 {
	var total int64
	for _, v := range c.values {
		total += int64(len(v))
		total += 16 // string header
	}
	return total + c.validityBytes()
}

// Float64Column stores double precision floats.
type Float64Column struct {
	buffer[float64]
}

// NewFloat64 builds a Float64 column.
func NewFloat64(values []Optional[float64]) *Float64Column {
	return &Float64Column{newBuffer(values)}
}

// Float64s builds a Float64 column with no nulls.
func Float64s(values ...float64) *Float64Column {
	return &Float64Column{presentBuffer(values)}
}

func (c *Float64Column) DataType() schema.DataType { return schema.Float64 }

// Float64Value returns row i. The result is meaningless when the row is null.
func (c *Float64Column) Float64Value(i int) float64 { return c.values[i] }

func (c *Float64Column) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

func (c *Float64Column) ValueString(i int) string {
	if c.IsNull(i) {
		return NullString
	}
	return strconv.FormatFloat(c.values[i], 'g', -1, 64)
}

func (c *Float64Column) MemoryUsage() int64 {
	return int64(len(c.values)*8) + c.validityBytes()
}

// BoolColumn stores booleans.
type BoolColumn struct {
	buffer[bool]
}

// NewBool builds a Bool column.
func NewBool(values []Optional[bool]) *BoolColumn {
	return &BoolColumn{newBuffer(values)}
}

// Bools builds a Bool column with no nulls.
func Bools(values ...bool) *BoolColumn {
	return &BoolColumn{presentBuffer(values)}
}

func (c *BoolColumn) DataType() schema.DataType { return schema.Bool }

// BoolValue returns row i. The result is meaningless when the row is null.
func (c *BoolColumn) BoolValue(i int) bool { return c.values[i] }

func (c *BoolColumn) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

func (c *BoolColumn) ValueString(i int) string {
	if c.IsNull(i) {
		return NullString
	}
	return strconv.FormatBool(c.values[i])
}

func (c *BoolColumn) MemoryUsage() int64 {
	return int64(len(c.values)) + c.validityBytes()
}

// TimestampColumn stores instants as microseconds since the Unix epoch, UTC.
type TimestampColumn struct {
	buffer[int64]
}

// NewTimestamp builds a Timestamp column. Values are truncated to microseconds.
func NewTimestamp(values []Optional[time.Time]) *TimestampColumn {
	micros := make([]Optional[int64], len(values))
	for i, v := range values {
		if v.Valid {
			micros[i] = Some(v.Value.UnixMicro())
		}
	}
	return &TimestampColumn{newBuffer(micros)}
}

// NewTimestampMicros builds a Timestamp column from raw epoch microseconds.
func NewTimestampMicros(values []Optional[int64]) *TimestampColumn {
	return &TimestampColumn{newBuffer(values)}
}

// Timestamps builds a Timestamp column with no nulls.
func Timestamps(values ...time.Time) *TimestampColumn {
	micros := make([]int64, len(values))
	for i, v := range values {
		micros[i] = v.UnixMicro()
	}
	return &TimestampColumn{buffer[int64]{values: micros}}
}

func (c *TimestampColumn) DataType() schema.DataType { return schema.Timestamp }

// Micros returns row i as epoch microseconds. The result is meaningless when
// the row is null.
func (c *TimestampColumn) Micros(i int) int64 { return c.values[i] }

// TimeValue returns row i as a UTC time.
func (c *TimestampColumn) TimeValue(i int) time.Time {
	return time.UnixMicro(c.values[i]).UTC()
}

func (c *TimestampColumn) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.TimeValue(i)
}

func (c *TimestampColumn) ValueString(i int) string {
	if c.IsNull(i) {
		return NullString
	}
	return c.TimeValue(i).Format(time.RFC3339Nano)
}

func (c *TimestampColumn) MemoryUsage() int64 {
	return int64(len(c.values)*8) + c.validityBytes()
}

var (
	_ Column = (*Int64Column)(nil)
	_ Column = (*Utf8Column)(nil)
	_ Column = (*Float64Column)(nil)
	_ Column = (*BoolColumn)(nil)
	_ Column = (*TimestampColumn)(nil)
)
