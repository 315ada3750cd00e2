// Package observability sets up OpenTelemetry tracing for the server
package observability

import (
	"context"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// ShutdownFunc flushes pending spans
type ShutdownFunc func(context.Context) error

// TracingConfig is read from the environment
type TracingConfig struct {
	Enabled     bool    `env:"RELIQUARY_OTEL_ENABLED" envDefault:"true"`
	Endpoint    string  `env:"RELIQUARY_OTEL_ENDPOINT"`
	ServiceName string  `env:"RELIQUARY_OTEL_SERVICE_NAME" envDefault:"reliquary-api"`
	SampleRatio float64 `env:"RELIQUARY_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadTracingConfig parses the RELIQUARY_OTEL_* variables
func LoadTracingConfig() (*TracingConfig, error) {
	var cfg TracingConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse tracing env")
	}
	return &cfg, nil
}

// Active reports whether spans will be exported
func (c *TracingConfig) Active() bool {
	return c != nil && c.Enabled && c.Endpoint != ""
}

// Setup registers the global propagator and, when tracing is active, a
// batching tracer provider exporting over OTLP/HTTP. The propagator is set
// either way so outgoing catalog fetches carry incoming trace context.
func Setup(ctx context.Context, cfg *TracingConfig) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Active() {
		slog.DebugContext(ctx, "tracing disabled")
		return noop, nil
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return noop, errors.InvalidArgumentf("sample ratio must be within 0-1, got %v", cfg.SampleRatio)
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create trace exporter").
			WithMeta("endpoint", cfg.Endpoint)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return noop, errors.Wrap(err, "failed to build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)

	slog.InfoContext(ctx, "tracing enabled",
		"endpoint", cfg.Endpoint,
		"service_name", cfg.ServiceName)

	return tp.Shutdown, nil
}
