// Package lambdadb is the columnar core of a small query engine: typed,
// nullable columns validated against a schema and assembled into immutable
// record batches.
//
// # Quick Start
//
// Build a schema, build one column per field, and assemble them:
//
//	import (
//	    "os"
//
//	    "github.com/ajitpratap0/lambdadb/pkg/batch"
//	    "github.com/ajitpratap0/lambdadb/pkg/column"
//	    "github.com/ajitpratap0/lambdadb/pkg/render"
//	    "github.com/ajitpratap0/lambdadb/pkg/schema"
//	)
//
//	id, _ := schema.NewField("id", schema.Int64, false)
//	age, _ := schema.NewField("age", schema.Int64, true)
//
//	b, err := batch.Assemble(schema.New(id, age), []column.Column{
//	    column.Int64s(1, 2),
//	    column.NewInt64([]column.Optional[int64]{column.Some[int64](30), column.Null[int64]()}),
//	})
//	if err != nil {
//	    // err is an *errors.Error of kind arity_mismatch, type_mismatch,
//	    // nullability_violation or row_count_mismatch
//	}
//	render.Text{}.Render(os.Stdout, b)
//
// Assembly checks column count, then column types, then nullability, then
// row counts, and reports the first failure found.
//
// # Key Packages
//
//	pkg/schema     - Data types, fields and schemas
//	pkg/column     - Typed columns with validity bitmaps
//	pkg/batch      - Record batch assembly and validation
//	pkg/render     - Text and JSON rendering
//	pkg/arrowconv  - Conversion to and from Apache Arrow records
//	pkg/tabledef   - YAML table definition files
//	pkg/config     - Runtime configuration
//	pkg/errors     - Structured error handling
//	pkg/logger     - Structured logging
//	pkg/metrics    - Assembly metrics
//	pkg/tracing    - Span export
//
// # Command Line
//
//	lambdadb                                # print the sample table
//	lambdadb render --table people.yaml     # assemble and print a file
//	lambdadb --format json --metrics        # JSON output, metrics on stderr
//	lambdadb version
//
// Settings can also come from a YAML file passed with --config and from
// LAMBDADB_* environment variables.
package lambdadb
