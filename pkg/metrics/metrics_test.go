package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsSuccess(t *testing.T) {
	before := testutil.ToFloat64(Assemblies.WithLabelValues(StatusSuccess))

	NewCollector().RecordSuccess(3, time.Millisecond)

	after := testutil.ToFloat64(Assemblies.WithLabelValues(StatusSuccess))
	assert.Equal(t, before+1, after)
}

func TestCollectorRecordsFailureByKind(t *testing.T) {
	failures := Assemblies.WithLabelValues(StatusFailure)
	kind := AssemblyErrors.WithLabelValues("arity_mismatch")
	unknown := AssemblyErrors.WithLabelValues("unknown")
	beforeFailures := testutil.ToFloat64(failures)
	beforeKind := testutil.ToFloat64(kind)
	beforeUnknown := testutil.ToFloat64(unknown)

	c := NewCollector()
	c.RecordFailure("arity_mismatch", time.Microsecond)
	c.RecordFailure("", time.Microsecond)

	assert.Equal(t, beforeFailures+2, testutil.ToFloat64(failures))
	assert.Equal(t, beforeKind+1, testutil.ToFloat64(kind))
	assert.Equal(t, beforeUnknown+1, testutil.ToFloat64(unknown))
}

func TestNoopCollector(t *testing.T) {
	success := Assemblies.WithLabelValues(StatusSuccess)
	before := testutil.ToFloat64(success)

	Noop().RecordSuccess(10, time.Second)
	var nilCollector *Collector
	nilCollector.RecordFailure("type_mismatch", time.Second)

	assert.Equal(t, before, testutil.ToFloat64(success))
}

func TestWriteText(t *testing.T) {
	NewCollector().RecordSuccess(1, time.Microsecond)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf))
	assert.Contains(t, buf.String(), "lambdadb_batch_assemblies_total")
	assert.Contains(t, buf.String(), "lambdadb_batch_rows_bucket")
}
