package spatialhash

import (
	"log/slog"
)

type options struct {
	dims             int
	cellCapacity     int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures accelerator construction.
type Option func(*options)

// WithDimension fixes the dimension of the point space.
//
// It is required when New is called with an empty point set. When points are
// given, every point must have exactly this dimension.
func WithDimension(dims int) Option {
	return func(o *options) {
		o.dims = dims
	}
}

// WithCellCapacity pre-sizes the cell map for roughly n occupied cells.
//
// By default the map is sized for one cell per point, which is the worst
// case for a sparse point set and wastes memory when cells hold many points.
func WithCellCapacity(n int) Option {
	return func(o *options) {
		o.cellCapacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &spatialhash.BasicMetricsCollector{}
//	acc, _ := spatialhash.New(points, 1.0, spatialhash.WithMetricsCollector(metrics))
//	// ... simulate ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, mean candidates: %.1f\n", stats.QueryCount, stats.CandidatesPerQuery)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := spatialhash.NewJSONLogger(slog.LevelInfo)
//	acc, _ := spatialhash.New(points, 1.0, spatialhash.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
