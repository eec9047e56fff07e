package seiscube

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seiscube-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithVolume adds the storage ID field to the logger.
func (l *Logger) WithVolume(storageID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("volume", storageID),
	}
}

// LogOpen logs opening a volume.
func (l *Logger) LogOpen(ctx context.Context, storageID, axes string, traces int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "open failed",
			"volume", storageID,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "volume opened",
			"volume", storageID,
			"axes", axes,
			"traces", traces,
		)
	}
}

// LogSubvolume logs a subvolume read.
// Request errors are logged at debug level since they are the caller's to handle.
func (l *Logger) LogSubvolume(ctx context.Context, request, box string, decoded, returned int, err error) {
	switch {
	case err != nil && isRequestError(err):
		l.DebugContext(ctx, "subvolume rejected",
			"request", request,
			"error", err,
		)
	case err != nil:
		l.ErrorContext(ctx, "subvolume read failed",
			"request", request,
			"box", box,
			"error", err,
		)
	default:
		l.DebugContext(ctx, "subvolume read completed",
			"request", request,
			"box", box,
			"decoded_cells", decoded,
			"returned_cells", returned,
		)
	}
}

// LogViewRead logs a keyed view read.
func (l *Logger) LogViewRead(ctx context.Context, view string, records int, err error) {
	switch {
	case err != nil && isRequestError(err):
		l.DebugContext(ctx, "view read rejected",
			"view", view,
			"error", err,
		)
	case err != nil:
		l.ErrorContext(ctx, "view read failed",
			"view", view,
			"records", records,
			"error", err,
		)
	default:
		l.DebugContext(ctx, "view read completed",
			"view", view,
			"records", records,
		)
	}
}

// LogClose logs closing a volume.
func (l *Logger) LogClose(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "close failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "volume closed")
	}
}
