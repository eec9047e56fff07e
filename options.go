package seiscube

import (
	"log/slog"

	"github.com/hupe1980/seiscube/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures Open.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring reads.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &seiscube.BasicMetricsCollector{}
//	vol, _ := seiscube.Open(reader, seiscube.WithMetricsCollector(metrics))
//	// ... use vol ...
//	stats := metrics.GetStats()
//	fmt.Printf("Decoded %d cells for %d returned\n", stats.DecodedCells, stats.ReturnedCells)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for reads.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := seiscube.NewJSONLogger(slog.LevelDebug)
//	vol, _ := seiscube.Open(reader, seiscube.WithLogger(logger))
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

// WithResourceController bounds bounding-box memory and decode throughput
// of subvolume reads and the per-record throughput of keyed views.
//
// Example limiting resident bounding boxes to 512 MiB:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 512 << 20})
//	vol, _ := seiscube.Open(reader, seiscube.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}
