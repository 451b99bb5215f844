package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultServiceName = "statblock-importer"
	scopeName          = "github.com/KirkDiggler/statblock-importer"
)

// Tracer returns the importer's tracer from the global provider
func Tracer() trace.Tracer {
	return otel.Tracer(scopeName)
}

// StartSpan starts a span carrying attrs. The caller ends it, usually with EndSpan.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan marks the span failed when err is set, then ends it
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
