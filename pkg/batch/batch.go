// Package batch assembles schemas and columns into immutable record batches.
//
// Assembly is the only place where columns meet their schema. It checks, in
// order and stopping at the first failure:
//
//  1. arity: one column per field              (arity_mismatch)
//  2. types: column i has field i's type        (type_mismatch)
//  3. nulls: non-nullable fields hold no nulls  (nullability_violation)
//  4. lengths: every column has column 0's rows (row_count_mismatch)
//
// A nil column, or a nil pointer to a concrete column, fails the type check
// with actual type "nil".
//
// Only when all checks pass is a RecordBatch built. No partially checked
// batch is ever observable.
package batch

import (
	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// RecordBatch is an immutable table value pairing one schema with matching
// columns. The schema and columns are shared with whoever else holds them;
// nothing reachable from a RecordBatch can be mutated.
type RecordBatch struct {
	schema  *schema.Schema
	columns []column.Column
	numRows int
}

// Schema returns the batch schema.
func (b *RecordBatch) Schema() *schema.Schema { return b.schema }

// NumRows returns the shared length of the columns, or 0 with no columns.
func (b *RecordBatch) NumRows() int { return b.numRows }

// NumColumns returns the number of columns, which equals the number of fields.
func (b *RecordBatch) NumColumns() int { return len(b.columns) }

// Column returns the column at position i.
func (b *RecordBatch) Column(i int) column.Column { return b.columns[i] }

// Columns returns the column handles in schema order. The slice is a copy;
// the columns themselves are shared.
func (b *RecordBatch) Columns() []column.Column {
	cols := make([]column.Column, len(b.columns))
	copy(cols, b.columns)
	return cols
}

// ColumnByName returns the column of the first field named name.
func (b *RecordBatch) ColumnByName(name string) (column.Column, bool) {
	i := b.schema.FieldIndex(name)
	if i < 0 {
		return nil, false
	}
	return b.columns[i], true
}

// MemoryUsage sums the estimated buffer sizes of all columns.
func (b *RecordBatch) MemoryUsage() int64 {
	var total int64
	for _, c := range b.columns {
		total += c.MemoryUsage()
	}
	return total
}
