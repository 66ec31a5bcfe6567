package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
	"github.com/ajitpratap0/lambdadb/pkg/testutil"
)

func sampleBatch(t *testing.T) *batch.RecordBatch {
	t.Helper()
	s := schema.New(
		testutil.Field(t, "id", schema.Int64, false),
		testutil.Field(t, "name", schema.Utf8, false),
		testutil.Field(t, "age", schema.Int64, true),
	)
	b, err := batch.Assemble(s, []column.Column{
		column.Int64s(1, 2, 3),
		column.Strings("Alice", "Bob", "Charlie"),
		column.NewInt64([]column.Optional[int64]{
			column.Some[int64](30), column.Some[int64](25), column.Null[int64](),
		}),
	})
	require.NoError(t, err)
	return b
}

const sampleText = `Schema:
  id: Int64 (not null)
  name: Utf8 (not null)
  age: Int64 (nullable)
Rows: 3
Columns: 3

id:
  [1, 2, 3]
name:
  ["Alice", "Bob", "Charlie"]
age:
  [30, 25, null]
`

func TestTextRendersSample(t *testing.T) {
	assert.Equal(t, sampleText, String(sampleBatch(t)))
}

func TestTextIsDeterministic(t *testing.T) {
	b := sampleBatch(t)
	var first, second bytes.Buffer
	require.NoError(t, Text{}.Render(&first, b))
	require.NoError(t, Text{}.Render(&second, b))
	assert.Equal(t, first.String(), second.String())
}

func TestTextEmptyBatches(t *testing.T) {
	empty, err := batch.Assemble(schema.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Schema:\nRows: 0\nColumns: 0\n", String(empty))

	s := schema.New(testutil.Field(t, "id", schema.Int64, false))
	noRows, err := batch.Assemble(s, []column.Column{column.Int64s()})
	require.NoError(t, err)
	assert.Equal(t, "Schema:\n  id: Int64 (not null)\nRows: 0\nColumns: 1\n", String(noRows))
}

func TestTextAllTypes(t *testing.T) {
	s := schema.New(
		testutil.Field(t, "score", schema.Float64, true),
		testutil.Field(t, "active", schema.Bool, false),
		testutil.Field(t, "seen", schema.Timestamp, true),
	)
	b, err := batch.Assemble(s, []column.Column{
		column.NewFloat64([]column.Optional[float64]{column.Some(1.5), column.Null[float64]()}),
		column.Bools(true, false),
		column.NewTimestamp([]column.Optional[time.Time]{
			column.Null[time.Time](),
			column.Some(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		}),
	})
	require.NoError(t, err)

	out := String(b)
	assert.Contains(t, out, "score:\n  [1.5, null]\n")
	assert.Contains(t, out, "active:\n  [true, false]\n")
	assert.Contains(t, out, "seen:\n  [null, 2024-01-02T03:04:05Z]\n")
}

func TestJSONRendersSample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(&buf, sampleBatch(t)))

	var doc struct {
		Schema []struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Nullable bool   `json:"nullable"`
		} `json:"schema"`
		NumRows    int `json:"num_rows"`
		NumColumns int `json:"num_columns"`
		Columns    []struct {
			Name      string `json:"name"`
			NullCount int    `json:"null_count"`
			Values    []any  `json:"values"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 3, doc.NumRows)
	assert.Equal(t, 3, doc.NumColumns)
	require.Len(t, doc.Schema, 3)
	assert.Equal(t, "Utf8", doc.Schema[1].Type)
	assert.True(t, doc.Schema[2].Nullable)

	require.Len(t, doc.Columns, 3)
	assert.Equal(t, "age", doc.Columns[2].Name)
	assert.Equal(t, 1, doc.Columns[2].NullCount)
	assert.Equal(t, []any{float64(30), float64(25), nil}, doc.Columns[2].Values)
	assert.Equal(t, []any{"Alice", "Bob", "Charlie"}, doc.Columns[1].Values)
}

func TestJSONEmptyBatch(t *testing.T) {
	empty, err := batch.Assemble(schema.New(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(&buf, empty))
	assert.JSONEq(t, `{"schema":[],"num_rows":0,"num_columns":0,"columns":[]}`, buf.String())
}

func TestJSONIsDeterministic(t *testing.T) {
	b := sampleBatch(t)
	r := JSON{Indent: "  "}
	var first, second bytes.Buffer
	require.NoError(t, r.Render(&first, b))
	require.NoError(t, r.Render(&second, b))
	assert.Equal(t, first.String(), second.String())
}

func TestNew(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)
	assert.IsType(t, Text{}, r)

	r, err = New("JSON")
	require.NoError(t, err)
	assert.IsType(t, JSON{}, r)

	_, err = New("xml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}
