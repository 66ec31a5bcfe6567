// Package render produces human-readable descriptions of record batches.
//
// Renderers only read the batch. Output depends on nothing but the batch
// contents, so rendering the same batch twice yields identical bytes.
package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/errors"
)

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes a description of a batch to w.
type Renderer interface {
	Render(w io.Writer, b *batch.RecordBatch) error
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return Text{}, nil
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeConfig, "unknown render format %q", format).
			WithDetail(errors.DetailActual, format)
	}
}

// String returns the text rendering of b.
func String(b *batch.RecordBatch) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = Text{}.Render(&buf, b)
	return buf.String()
}
