// Package telemetry wires OpenTelemetry tracing for graphbench.
//
// Usage:
//
//	shutdown, err := telemetry.Init(ctx, telemetry.Config{Enabled: true, Endpoint: "localhost:4317"})
//	if err != nil {
//	    return err
//	}
//	defer shutdown(ctx)
//
//	ctx, span := telemetry.Tracer().Start(ctx, "bfs")
//	defer span.End()
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used by graphbench.
const InstrumentationName = "github.com/katalvlaran/parlath/cmd/graphbench"

// Config holds tracing settings.
type Config struct {
	Enabled        bool
	Endpoint       string // host:port of an OTLP/gRPC collector
	Insecure       bool
	ServiceName    string
	ServiceVersion string
	SampleRatio    float64 // 1 samples everything
}

// ShutdownFunc flushes and stops the TracerProvider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error {
	return nil
}

// Init installs a global TracerProvider exporting over OTLP/gRPC. When
// tracing is disabled it leaves the no-op provider in place.
func Init(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	exporter, err := otlptracegrpc.New(ctx, exporterOptions(cfg)...)
	if err != nil {
		return noopShutdown, err
	}
	tp, err := NewTracerProvider(ctx, cfg, sdktrace.WithBatcher(exporter))
	if err != nil {
		return noopShutdown, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// NewTracerProvider builds a provider with the graphbench resource and
// sampler; opts attach exporters or span processors.
func NewTracerProvider(ctx context.Context, cfg Config, opts ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	res, err := buildResource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRatio)),
	}, opts...)

	return sdktrace.NewTracerProvider(opts...), nil
}

// Tracer returns the graphbench tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

func exporterOptions(cfg Config) []otlptracegrpc.Option {
	var opts []otlptracegrpc.Option
	endpoint := cfg.Endpoint
	insecure := cfg.Insecure || strings.HasPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	if endpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(endpoint))
	}
	if insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	return opts
}

func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

func buildResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	name := cfg.ServiceName
	if name == "" {
		name = "graphbench"
	}
	version := cfg.ServiceVersion
	if version == "" {
		version = "unknown"
	}

	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
			attribute.String("graphbench.component", "engine"),
		),
	)
}
