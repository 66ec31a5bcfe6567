package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
)

// Text renders a batch as plain text:
//
//	Schema:
//	  id: Int64 (not null)
//	  age: Int64 (nullable)
//	Rows: 2
//	Columns: 2
//
//	id:
//	  [1, 2]
//	age:
//	  [30, null]
//
// Column bodies are omitted when the batch has no rows.
type Text struct{}

// Render implements Renderer.
func (Text) Render(w io.Writer, b *batch.RecordBatch) error {
	bw := bufio.NewWriter(w)
	s := b.Schema()

	fmt.Fprintln(bw, "Schema:")
	for i := 0; i < s.NumFields(); i++ {
		fmt.Fprintf(bw, "  %s\n", s.Field(i))
	}
	fmt.Fprintf(bw, "Rows: %d\n", b.NumRows())
	fmt.Fprintf(bw, "Columns: %d\n", b.NumColumns())

	if b.NumRows() > 0 {
		for i := 0; i < b.NumColumns(); i++ {
			col := b.Column(i)
			if i == 0 {
				fmt.Fprintln(bw)
			}
			fmt.Fprintf(bw, "%s:\n  [", s.Field(i).Name())
			for row := 0; row < col.Len(); row++ {
				if row > 0 {
					bw.WriteString(", ")
				}
				bw.WriteString(col.ValueString(row))
			}
			bw.WriteString("]\n")
		}
	}

	return bw.Flush()
}
