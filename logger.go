package gosoup

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gosoup-specific context.
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

// WithPage adds a page number field to the logger.
func (l *Logger) WithPage(pageNumber uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("page", pageNumber),
	}
}

// WithIndex adds an element index field to the logger.
func (l *Logger) WithIndex(idx uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", idx),
	}
}

// LogAppend logs an append operation.
func (l *Logger) LogAppend(ctx context.Context, idx uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "append failed",
			"index", idx,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "append completed",
			"index", idx,
		)
	}
}

// LogRead logs an element or partition read.
func (l *Logger) LogRead(ctx context.Context, idx uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"index", idx,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"index", idx,
		)
	}
}

// LogEvict logs a page eviction caused by a slot conflict.
func (l *Logger) LogEvict(ctx context.Context, pageNumber uint64) {
	l.DebugContext(ctx, "page evicted",
		"page", pageNumber,
	)
}

// LogFlush logs a flush of all resident pages.
func (l *Logger) LogFlush(ctx context.Context, pages int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "flush failed",
			"pages", pages,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "flush completed",
			"pages", pages,
		)
	}
}

// LogClose logs the final write-back on close.
func (l *Logger) LogClose(ctx context.Context, err error) {
	if err != nil {
		l.WarnContext(ctx, "close completed with write-back failures",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "close completed")
	}
}
