package didway

import (
	"log/slog"

	"github.com/didway/didway/pkg/didway/observability"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used for dispatch logging.
// Defaults to slog.Default(). The message router inherits this logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
// Defaults to observability.NoopMetrics{}. Pass
// observability.NewMetricsRecorder() to record OpenTelemetry metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpanManager sets the trace span manager.
// Defaults to observability.NoopSpanManager{}. Pass
// observability.NewSpanManager() to emit OpenTelemetry spans per dispatch
// and per plugin invocation.
func WithSpanManager(s observability.SpanManager) Option {
	return func(e *Engine) {
		if s != nil {
			e.spans = s
		}
	}
}
