package propfilter

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with propfilter-specific context.
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

// WithProperty adds a property key field to the logger.
func (l *Logger) WithProperty(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("property", key),
	}
}

// WithOperation adds a query combinator field to the logger.
func (l *Logger) WithOperation(op Operation) *Logger {
	return &Logger{
		Logger: l.Logger.With("operation", string(op)),
	}
}

// WithTokenCount adds a token count field to the logger.
func (l *Logger) WithTokenCount(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("tokens", n),
	}
}

// LogFilter logs a collection filter operation.
func (l *Logger) LogFilter(ctx context.Context, total, matched int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"total", total,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "filter completed",
			"total", total,
			"matched", matched,
			"duration", duration,
		)
	}
}

// LogSearch logs an index search operation.
func (l *Logger) LogSearch(ctx context.Context, tokens int, results uint64, fastPath bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index search failed",
			"tokens", tokens,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index search completed",
			"tokens", tokens,
			"results", results,
			"fast_path", fastPath,
		)
	}
}
