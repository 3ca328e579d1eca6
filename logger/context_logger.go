package logger

import (
	"context"
	"log/slog"
)

// ContextKey is the type for context keys used in logging
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ViewIDKey    ContextKey = "view_id"
)

// WithRequestID adds a request id to ctx for log correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithViewID adds a page view id to ctx for log correlation
func WithViewID(ctx context.Context, viewID string) context.Context {
	return context.WithValue(ctx, ViewIDKey, viewID)
}

// FromContext returns Logger annotated with the ids carried by ctx
func FromContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0, 4)
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		args = append(args, string(RequestIDKey), requestID)
	}
	if viewID, ok := ctx.Value(ViewIDKey).(string); ok {
		args = append(args, string(ViewIDKey), viewID)
	}
	return Logger.With(args...)
}
