package insrcdata

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with insrcdata-specific helpers.
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

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBuild logs the one-time construction of static state.
func (l *Logger) LogBuild(ctx context.Context, name string, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "static build failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "static build completed",
			"name", name,
			"elapsed", elapsed,
		)
	}
}

// LogLoad logs an index decoded from a pack.
func (l *Logger) LogLoad(ctx context.Context, section string, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index load failed",
			"section", section,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index loaded",
			"section", section,
			"entries", entries,
		)
	}
}
