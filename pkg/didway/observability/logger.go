// Package observability provides structured logging, metrics, and
// distributed tracing for didway dispatches.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger adds dispatch context to a logger.
// Returns a new logger with dispatch_id and operation fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "disp-1a2b3c4d", "did_create")
//	enriched.Debug("delegating") // includes dispatch_id, operation
func EnrichLogger(logger *slog.Logger, dispatchID, operation string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("dispatch_id", dispatchID),
		slog.String("operation", operation),
	)
}

// LogDispatchStart logs delegation of an operation to the registered plugins.
func LogDispatchStart(logger *slog.Logger, target string, pluginCount int) {
	if logger == nil {
		return
	}
	logger.Debug("delegating operation to plugins",
		slog.String("target", target),
		slog.Int("plugins", pluginCount),
	)
}

// LogDispatchComplete logs the fold result of a successful dispatch.
func LogDispatchComplete(logger *slog.Logger, target string, pluginCount, resultCount int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("dispatch yielded results",
		slog.String("target", target),
		slog.Int("plugins", pluginCount),
		slog.Int("results", resultCount),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogDispatchError logs a failed dispatch.
func LogDispatchError(logger *slog.Logger, target string, err error) {
	if logger == nil {
		return
	}
	logger.Error("dispatch failed",
		slog.String("target", target),
		slog.String("error", err.Error()),
	)
}

// LogMessageSend logs routing of a message to its subscribed consumers.
func LogMessageSend(logger *slog.Logger, topic string, selected, replies int) {
	if logger == nil {
		return
	}
	logger.Debug("message routed",
		slog.String("topic", topic),
		slog.Int("consumers", selected),
		slog.Int("replies", replies),
	)
}

// LogMessageError logs a failed message send.
func LogMessageError(logger *slog.Logger, topic string, err error) {
	if logger == nil {
		return
	}
	logger.Error("message send failed",
		slog.String("topic", topic),
		slog.String("error", err.Error()),
	)
}
