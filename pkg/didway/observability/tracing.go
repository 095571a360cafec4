package observability

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the didway tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("didway")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartDispatchSpan starts a span for one aggregated dispatch.
	// Returns the context with span and the span itself.
	StartDispatchSpan(ctx context.Context, operation, target string) (context.Context, trace.Span)

	// StartPluginSpan starts a span for a single plugin invocation.
	// The plugin span should be a child of the dispatch span.
	StartPluginSpan(ctx context.Context, pluginIndex int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartDispatchSpan starts a span for one aggregated dispatch.
func (m *otelSpanManager) StartDispatchSpan(ctx context.Context, operation, target string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "didway.dispatch."+operation,
		trace.WithAttributes(
			attribute.String("dispatch.operation", operation),
			attribute.String("dispatch.target", target),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartPluginSpan starts a span for a single plugin invocation.
func (m *otelSpanManager) StartPluginSpan(ctx context.Context, pluginIndex int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "didway.plugin."+strconv.Itoa(pluginIndex),
		trace.WithAttributes(
			attribute.Int("plugin.index", pluginIndex),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
