// Package ctxlog carries a slog.Logger through context.Context so that
// every stage of a run logs with the same run-scoped attributes.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this package's context entries private.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the process-wide default
// logger when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
