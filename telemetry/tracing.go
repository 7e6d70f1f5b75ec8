package telemetry

import (
	"context"
	"fmt"

	"github.com/colorfulnotion/branchcost/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName identifies spans exported by the benchmark.
const ServiceName = "branch_bench"

// TracerName is the instrumentation scope used by the bench package.
const TracerName = "github.com/colorfulnotion/branchcost/bench"

// Provider owns the tracer provider used for stage spans.
type Provider struct {
	tp       trace.TracerProvider
	shutdown func(context.Context) error
}

// NewTracerProvider exports spans over OTLP/HTTP to endpoint (host:port).
// An empty endpoint yields a no-op provider.
func NewTracerProvider(ctx context.Context, endpoint string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{
			tp:       noop.NewTracerProvider(),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter for %s: %w", endpoint, err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
		)),
	)
	log.Debug(log.TelemetryMonitoring, "otlp exporter ready", "endpoint", endpoint)
	return &Provider{tp: tp, shutdown: tp.Shutdown}, nil
}

// NewProviderFrom wraps an existing provider, e.g. one backed by a span recorder.
func NewProviderFrom(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{tp: tp, shutdown: tp.Shutdown}
}

// Tracer returns the tracer for benchmark stages.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(TracerName)
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.shutdown(ctx); err != nil {
		return fmt.Errorf("tracer shutdown: %w", err)
	}
	return nil
}
