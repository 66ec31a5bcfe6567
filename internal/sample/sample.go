// Package sample holds the demonstration table printed by the CLI.
package sample

import (
	"context"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// Schema returns id (Int64), name (Utf8) and a nullable age (Int64).
func Schema() (*schema.Schema, error) {
	id, err := schema.NewField("id", schema.Int64, false)
	if err != nil {
		return nil, err
	}
	name, err := schema.NewField("name", schema.Utf8, false)
	if err != nil {
		return nil, err
	}
	age, err := schema.NewField("age", schema.Int64, true)
	if err != nil {
		return nil, err
	}
	return schema.New(id, name, age), nil
}

// Columns returns three people, the last with an unknown age.
func Columns() []column.Column {
	return []column.Column{
		column.Int64s(1, 2, 3),
		column.Strings("Alice", "Bob", "Charlie"),
		column.NewInt64([]column.Optional[int64]{
			column.Some[int64](30),
			column.Some[int64](25),
			column.Null[int64](),
		}),
	}
}

// Batch assembles the sample table with a.
func Batch(ctx context.Context, a *batch.Assembler) (*batch.RecordBatch, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}
	return a.Assemble(ctx, s, Columns())
}
