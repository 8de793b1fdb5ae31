package log

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

// NewContext returns a copy of ctx carrying logger
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext extracts a logger from ctx, falling back to the slog default
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides the recurring log records of the client
type StructuredLogger struct {
	logger *Logger
}

func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{logger: logger}
}

// LogRequestStart logs an outbound API call at debug level
func (sl *StructuredLogger) LogRequestStart(ctx context.Context, method, url, requestID string) {
	fields := NewFields().
		WithRequest(method, url).
		WithRequestID(requestID)

	sl.logger.DebugContext(ctx, "API request started", fields.ToSlice()...)
}

// LogRequestEnd logs the completion of an outbound API call. 4xx is a warning,
// 5xx an error.
func (sl *StructuredLogger) LogRequestEnd(ctx context.Context, method, url, requestID string, statusCode int, durationMs int64) {
	level := slog.LevelDebug
	if statusCode >= 400 && statusCode < 500 {
		level = slog.LevelWarn
	} else if statusCode >= 500 {
		level = slog.LevelError
	}

	fields := NewFields().
		WithRequest(method, url).
		WithRequestID(requestID).
		WithResponse(statusCode, durationMs)

	sl.logger.Log(ctx, level, "API request completed", fields.ToSlice()...)
}

// LogMutation logs a successful create, update, delete or pay
func (sl *StructuredLogger) LogMutation(ctx context.Context, resource, operation string, id int64) {
	fields := NewFields().
		WithResource(resource, id).
		WithOperation(operation)

	sl.logger.InfoContext(ctx, "Resource changed", fields.ToSlice()...)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	allFields := fields.
		WithError(err).
		WithOperation(operation)

	sl.logger.ErrorContext(ctx, msg, allFields.ToSlice()...)
}
