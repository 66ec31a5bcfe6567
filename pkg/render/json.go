package render

import (
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/column"
)

// JSON renders a batch as one JSON document. It is a diagnostic view, not a
// storage format: timestamps become RFC 3339 strings and nulls become null.
type JSON struct {
	// Indent, when non-empty, pretty-prints with this indent per level.
	Indent string
}

type jsonField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

type jsonColumn struct {
	Name      string `json:"name"`
	NullCount int    `json:"null_count"`
	Values    []any  `json:"values"`
}

type jsonBatch struct {
	Schema     []jsonField  `json:"schema"`
	NumRows    int          `json:"num_rows"`
	NumColumns int          `json:"num_columns"`
	Columns    []jsonColumn `json:"columns"`
}

// Render implements Renderer.
func (r JSON) Render(w io.Writer, b *batch.RecordBatch) error {
	s := b.Schema()
	doc := jsonBatch{
		Schema:     make([]jsonField, s.NumFields()),
		NumRows:    b.NumRows(),
		NumColumns: b.NumColumns(),
		Columns:    []jsonColumn{},
	}
	for i, f := range s.Fields() {
		doc.Schema[i] = jsonField{Name: f.Name(), Type: f.DataType().String(), Nullable: f.Nullable()}
	}

	if b.NumRows() > 0 {
		for i := 0; i < b.NumColumns(); i++ {
			doc.Columns = append(doc.Columns, jsonColumn{
				Name:      s.Field(i).Name(),
				NullCount: b.Column(i).NullCount(),
				Values:    jsonValues(b.Column(i)),
			})
		}
	}

	enc := json.NewEncoder(w)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	return enc.Encode(doc)
}

func jsonValues(c column.Column) []any {
	out := make([]any, c.Len())
	for i := range out {
		v := c.Value(i)
		if t, ok := v.(time.Time); ok {
			v = t.Format(time.RFC3339Nano)
		}
		out[i] = v
	}
	return out
}
