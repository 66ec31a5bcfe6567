// Package tracing installs the OpenTelemetry tracer provider used by the CLI.
package tracing

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
)

// Config contains tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	// SamplingRate is the fraction of traces kept, 0.0 to 1.0
	SamplingRate float64
	// PrettyPrint indents exported spans
	PrettyPrint bool
}

// DefaultConfig samples every trace.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "lambdadb",
		ServiceVersion: "dev",
		SamplingRate:   1.0,
		PrettyPrint:    true,
	}
}

// ShutdownFunc flushes pending spans and stops the provider.
type ShutdownFunc func(context.Context) error

// Setup exports spans to w and installs the provider globally, so tracers
// obtained through otel.Tracer start recording. Call the returned function
// before exit to flush.
func Setup(w io.Writer, cfg Config) (ShutdownFunc, error) {
	tp, err := NewProvider(w, cfg)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// NewProvider builds a tracer provider that exports to w without installing
// it.
func NewProvider(w io.Writer, cfg Config) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "create trace resource")
	}

	opts := []stdouttrace.Option{stdouttrace.WithWriter(w)}
	if cfg.PrettyPrint {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "create stdout exporter")
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SamplingRate)),
		sdktrace.WithBatcher(exporter),
	), nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}
