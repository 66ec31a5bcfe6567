// Package metrics tracks batch assembly with Prometheus collectors.
//
// All collectors register with the default registry on package init, under
// the lambdadb namespace:
//
//	lambdadb_batch_assemblies_total{status}          success / failure
//	lambdadb_batch_assembly_errors_total{kind}      failures by error type
//	lambdadb_batch_rows                              rows per assembled batch
//	lambdadb_batch_assembly_duration_seconds         validation time
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Values of the status label on Assemblies.
const (
	// StatusSuccess marks an assembly that produced a batch.
	StatusSuccess = "success"
	// StatusFailure marks an assembly rejected by validation.
	StatusFailure = "failure"
)

var (
	// Assemblies counts assembly attempts by outcome
	Assemblies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lambdadb",
			Subsystem: "batch",
			Name:      "assemblies_total",
			Help:      "Total number of record batch assembly attempts",
		},
		[]string{"status"},
	)

	// AssemblyErrors counts rejected assemblies by error kind
	AssemblyErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lambdadb",
			Subsystem: "batch",
			Name:      "assembly_errors_total",
			Help:      "Total number of rejected record batch assemblies by error kind",
		},
		[]string{"kind"},
	)

	// BatchRows observes the row count of every assembled batch
	BatchRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lambdadb",
			Subsystem: "batch",
			Name:      "rows",
			Help:      "Number of rows in assembled record batches",
			Buckets:   []float64{0, 1, 10, 100, 1000, 10000, 100000, 1000000},
		},
	)

	// AssemblyDuration observes how long validation and construction take
	AssemblyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lambdadb",
			Subsystem: "batch",
			Name:      "assembly_duration_seconds",
			Help:      "Duration of record batch assembly in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)
)

// Collector records assembly outcomes. The zero value is not usable; use
// NewCollector or Noop.
type Collector struct {
	enabled bool
}

// NewCollector returns a collector that writes to the package collectors.
func NewCollector() *Collector {
	return &Collector{enabled: true}
}

// Noop returns a collector that records nothing.
func Noop() *Collector {
	return &Collector{}
}

// RecordSuccess records an assembled batch of rows rows.
func (c *Collector) RecordSuccess(rows int, duration time.Duration) {
	if c == nil || !c.enabled {
		return
	}
	Assemblies.WithLabelValues(StatusSuccess).Inc()
	BatchRows.Observe(float64(rows))
	AssemblyDuration.Observe(duration.Seconds())
}

// RecordFailure records a rejected assembly of the given error kind.
func (c *Collector) RecordFailure(kind string, duration time.Duration) {
	if c == nil || !c.enabled {
		return
	}
	if kind == "" {
		kind = "unknown"
	}
	Assemblies.WithLabelValues(StatusFailure).Inc()
	AssemblyErrors.WithLabelValues(kind).Inc()
	AssemblyDuration.Observe(duration.Seconds())
}

// WriteText dumps every metric family in the default registry in the
// Prometheus text exposition format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
