// Package telemetry installs the OpenTelemetry trace and metric providers and
// holds the instruments the importer records against.
package telemetry

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

// Config selects which providers Setup installs
type Config struct {
	ServiceName    string
	ServiceVersion string

	// TraceEndpoint is an OTLP/HTTP collector URL. Empty disables tracing.
	TraceEndpoint string

	// Metrics installs a Prometheus-backed meter provider
	Metrics bool
}

// Provider is the installed telemetry. MetricsHandler is nil unless metrics
// were enabled.
type Provider struct {
	MetricsHandler http.Handler
	shutdown       []func(context.Context) error
}

// Shutdown flushes and closes every installed provider
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Setup registers the global providers named by cfg. With nothing enabled it
// installs nothing and the global no-op providers stay in place.
func Setup(ctx context.Context, cfg *Config) (*Provider, error) {
	p := &Provider{}
	if cfg == nil || (cfg.TraceEndpoint == "" && !cfg.Metrics) {
		return p, nil
	}

	name := cfg.ServiceName
	if name == "" {
		name = defaultServiceName
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build telemetry resource")
	}

	if cfg.TraceEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.TraceEndpoint))
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create trace exporter")
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
		p.shutdown = append(p.shutdown, tp.Shutdown)
	}

	if cfg.Metrics {
		registry := prometheus.NewRegistry()
		exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create metrics exporter")
		}

		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)
		otel.SetMeterProvider(mp)
		p.shutdown = append(p.shutdown, mp.Shutdown)
		p.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	return p, nil
}
