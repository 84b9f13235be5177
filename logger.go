package simsearch

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simsearch-specific helpers.
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

// LogAdd logs an item registration.
func (l *Logger) LogAdd(count, total int) {
	l.Debug("items added",
		"count", count,
		"total", total,
	)
}

// LogAddScorer logs a scoring pipeline change.
func (l *Logger) LogAddScorer(scorers int, weight float64, rebuilt int) {
	l.Info("scorer added",
		"scorers", scorers,
		"weight", weight,
		"states_rebuilt", rebuilt,
	)
}

// LogRank logs a rank or search operation.
func (l *Logger) LogRank(queryLen, results int) {
	l.Debug("rank completed",
		"query_len", queryLen,
		"results", results,
	)
}
