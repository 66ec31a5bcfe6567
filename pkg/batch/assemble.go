package batch

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ajitpratap0/lambdadb/pkg/column"
	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/metrics"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

const tracerName = "github.com/ajitpratap0/lambdadb/pkg/batch"

// Assembler validates columns against schemas. It carries only observability
// hooks; assembly itself is a pure function of its inputs.
type Assembler struct {
	logger  *zap.Logger
	tracer  trace.Tracer
	metrics *metrics.Collector
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger logs every rejected assembly at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTracer records a span per assembly.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Assembler) {
		if tracer != nil {
			a.tracer = tracer
		}
	}
}

// WithMetrics records assembly outcomes.
func WithMetrics(collector *metrics.Collector) Option {
	return func(a *Assembler) {
		if collector != nil {
			a.metrics = collector
		}
	}
}

// NewAssembler creates an assembler. Without options it logs nothing, uses the
// global OpenTelemetry tracer, and records no metrics.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
		metrics: metrics.Noop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAssembler = NewAssembler()

// Assemble validates columns against s and returns the batch, or the first
// failure as an *errors.Error.
func Assemble(s *schema.Schema, columns []column.Column) (*RecordBatch, error) {
	return defaultAssembler.Assemble(context.Background(), s, columns)
}

// Assemble validates columns against s and returns the batch, or the first
// failure as an *errors.Error.
func (a *Assembler) Assemble(ctx context.Context, s *schema.Schema, columns []column.Column) (*RecordBatch, error) {
	_, span := a.tracer.Start(ctx, "batch.Assemble", trace.WithAttributes(
		attribute.Int("batch.columns", len(columns)),
	))
	defer span.End()

	start := time.Now()
	b, err := assemble(s, columns)
	elapsed := time.Since(start)

	if err != nil {
		kind := errors.TypeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(kind))
		a.metrics.RecordFailure(string(kind), elapsed)
		a.logger.Debug("record batch rejected",
			zap.String("kind", string(kind)),
			zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("batch.rows", b.numRows))
	a.metrics.RecordSuccess(b.numRows, elapsed)
	a.logger.Debug("record batch assembled",
		zap.Int("rows", b.numRows),
		zap.Int("columns", len(b.columns)),
		zap.Duration("duration", elapsed))
	return b, nil
}

func assemble(s *schema.Schema, columns []column.Column) (*RecordBatch, error) {
	if s == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "schema must not be nil")
	}

	if len(columns) != s.NumFields() {
		return nil, errors.Newf(errors.ErrorTypeArityMismatch,
			"schema has %d fields but %d columns were supplied", s.NumFields(), len(columns)).
			WithDetail(errors.DetailExpected, s.NumFields()).
			WithDetail(errors.DetailActual, len(columns))
	}

	for i, c := range columns {
		if err := checkType(i, s.Field(i), c); err != nil {
			return nil, err
		}
	}

	for i, c := range columns {
		f := s.Field(i)
		if f.Nullable() {
			continue
		}
		if row := c.FirstNull(); row >= 0 {
			return nil, errors.Newf(errors.ErrorTypeNullabilityViolation,
				"column %d (%q) has a null at row %d but the field is not nullable", i, f.Name(), row).
				WithDetail(errors.DetailIndex, i).
				WithDetail(errors.DetailRow, row).
				WithDetail(errors.DetailField, f.Name())
		}
	}

	numRows := 0
	if len(columns) > 0 {
		numRows = columns[0].Len()
	}
	for i, c := range columns {
		if c.Len() != numRows {
			return nil, errors.Newf(errors.ErrorTypeRowCountMismatch,
				"column %d (%q) has %d rows, expected %d", i, s.Field(i).Name(), c.Len(), numRows).
				WithDetail(errors.DetailIndex, i).
				WithDetail(errors.DetailExpected, numRows).
				WithDetail(errors.DetailActual, c.Len()).
				WithDetail(errors.DetailField, s.Field(i).Name())
		}
	}

	cols := make([]column.Column, len(columns))
	copy(cols, columns)
	return &RecordBatch{schema: s, columns: cols, numRows: numRows}, nil
}

func checkType(i int, f schema.Field, c column.Column) error {
	actual := "nil"
	if !column.IsNil(c) {
		if c.DataType() == f.DataType() {
			return nil
		}
		actual = c.DataType().String()
	}
	return errors.Newf(errors.ErrorTypeTypeMismatch,
		"column %d (%q) has type %s, expected %s", i, f.Name(), actual, f.DataType()).
		WithDetail(errors.DetailIndex, i).
		WithDetail(errors.DetailExpected, f.DataType().String()).
		WithDetail(errors.DetailActual, actual).
		WithDetail(errors.DetailField, f.Name())
}
