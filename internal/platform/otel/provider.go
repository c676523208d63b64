package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/aopps/admin-console/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings selects the trace exporter. Read from AOPPS_OTEL_* variables.
type Settings struct {
	Endpoint    string  `env:"OTEL_ENDPOINT"`
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"true"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether spans should be exported.
func (s Settings) Active() bool {
	return s.Enabled && strings.TrimSpace(s.Endpoint) != ""
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when AOPPS_OTEL_ENDPOINT is empty or AOPPS_OTEL_ENABLED
// is false, Setup returns a no-op shutdown function and leaves the global
// provider alone.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return noop, err
	}
	return SetupWith(ctx, serviceName, settings)
}

// SetupWith is Setup with explicit settings.
func SetupWith(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(settings.Endpoint),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(settings.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	if ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	if ratio <= 0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

func noop(context.Context) error { return nil }
