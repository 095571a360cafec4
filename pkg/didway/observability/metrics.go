package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records didway dispatch metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordDispatch records one aggregated dispatch with its duration and
	// error status.
	RecordDispatch(ctx context.Context, operation string, duration time.Duration, err error)

	// RecordPluginResult records a single plugin's three-way outcome
	// ("success", "ignored", "not_implemented").
	RecordPluginResult(ctx context.Context, operation, status string)

	// RecordMessageSend records a routed message with the number of
	// consumers it was delivered to.
	RecordMessageSend(ctx context.Context, topic string, consumers int, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	dispatches      metric.Int64Counter
	dispatchLatency metric.Float64Histogram
	dispatchErrors  metric.Int64Counter
	pluginResults   metric.Int64Counter
	messageSends    metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("didway")

	dispatches, err := meter.Int64Counter("didway.dispatch.count",
		metric.WithDescription("Number of dispatched operations"),
	)
	if err != nil {
		return nil, err
	}

	dispatchLatency, err := meter.Float64Histogram("didway.dispatch.latency_ms",
		metric.WithDescription("Dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	dispatchErrors, err := meter.Int64Counter("didway.dispatch.errors",
		metric.WithDescription("Number of failed dispatches"),
	)
	if err != nil {
		return nil, err
	}

	pluginResults, err := meter.Int64Counter("didway.plugin.results",
		metric.WithDescription("Plugin outcomes by status"),
	)
	if err != nil {
		return nil, err
	}

	messageSends, err := meter.Int64Counter("didway.message.sends",
		metric.WithDescription("Number of routed messages"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		dispatches:      dispatches,
		dispatchLatency: dispatchLatency,
		dispatchErrors:  dispatchErrors,
		pluginResults:   pluginResults,
		messageSends:    messageSends,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDispatch records one aggregated dispatch.
func (m *otelMetrics) RecordDispatch(ctx context.Context, operation string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
	}

	m.dispatches.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.dispatchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.dispatchErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordPluginResult records a single plugin outcome.
func (m *otelMetrics) RecordPluginResult(ctx context.Context, operation, status string) {
	m.pluginResults.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// RecordMessageSend records a routed message.
func (m *otelMetrics) RecordMessageSend(ctx context.Context, topic string, consumers int, err error) {
	m.messageSends.Add(ctx, 1, metric.WithAttributes(
		attribute.String("topic", topic),
		attribute.Int("consumers", consumers),
		attribute.Bool("success", err == nil),
	))
}
