package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

func TestProviderExportsAssemblySpans(t *testing.T) {
	var out bytes.Buffer
	tp, err := NewProvider(&out, Config{ServiceName: "lambdadb-test", SamplingRate: 1})
	require.NoError(t, err)

	a := batch.NewAssembler(
		batch.WithLogger(zaptest.NewLogger(t)),
		batch.WithTracer(tp.Tracer("test")),
	)
	f, err := schema.NewField("id", schema.Int64, false)
	require.NoError(t, err)
	_, err = a.Assemble(context.Background(), schema.New(f), []column.Column{column.Int64s(1, 2)})
	require.NoError(t, err)

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, out.String(), `"Name":"batch.Assemble"`)
	assert.Contains(t, out.String(), "lambdadb-test")
}

func TestNeverSample(t *testing.T) {
	var out bytes.Buffer
	tp, err := NewProvider(&out, Config{ServiceName: "quiet", SamplingRate: 0})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "ignored")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Empty(t, out.String())
}

func TestSetupInstallsGlobalProvider(t *testing.T) {
	var out bytes.Buffer
	shutdown, err := Setup(&out, DefaultConfig())
	require.NoError(t, err)

	f, err := schema.NewField("id", schema.Int64, false)
	require.NoError(t, err)
	// A fresh assembler picks up the global provider.
	_, err = batch.NewAssembler().Assemble(context.Background(), schema.New(f), []column.Column{column.Int64s(1)})
	require.NoError(t, err)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, out.String(), "batch.Assemble")
}
