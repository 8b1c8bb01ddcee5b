package spatialhash

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with accelerator-specific helpers.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRadius adds a radius field to the logger.
func (l *Logger) WithRadius(radius float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("radius", radius),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithIndex adds a point index field to the logger.
func (l *Logger) WithIndex(idx int) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", idx),
	}
}

// LogBuild logs accelerator construction.
func (l *Logger) LogBuild(ctx context.Context, points, cells int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "build completed",
			"points", points,
			"cells", cells,
		)
	}
}

// LogRelocate logs a point relocation.
func (l *Logger) LogRelocate(ctx context.Context, idx int, moved bool, err error) {
	l = l.WithIndex(idx)
	if err != nil {
		l.ErrorContext(ctx, "relocate failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "relocate completed",
			"moved", moved,
		)
	}
}

// LogStats logs bucket occupancy diagnostics.
func (l *Logger) LogStats(ctx context.Context, name string, s Stats) {
	l.InfoContext(ctx, "accelerator stats",
		"name", name,
		"points", s.Points,
		"cells", s.Cells,
		"occupied", s.Occupied,
		"mean_per_cell", s.MeanOccupancy,
		"stddev_per_cell", s.StdDevOccupancy,
		"max_per_cell", s.MaxOccupancy,
		"spilled", s.Spilled,
	)
}
