// Package otel bootstraps OpenTelemetry tracing for charnorm entry points.
package otel

import (
	"context"

	"github.com/louisbranch/charnorm/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Config controls trace export.
type Config struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when CHARNORM_OTEL_ENDPOINT is empty or
// CHARNORM_OTEL_ENABLED is false, Setup returns a no-op shutdown function and
// no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a tracer from the global provider. Before Setup registers a
// provider, spans are no-ops.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
