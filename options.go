package propfilter

import (
	"log/slog"

	"github.com/youdz/propfilter/codec"
)

type options struct {
	codec             codec.Codec
	workers           int
	metricsCollector  MetricsCollector
	logger            *Logger
	disableValidation bool
}

// Option configures Engine and Index constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. codec-specific constructor variants).
type Option func(*options)

// WithCodec configures the codec used when converting foreign record types
// into items and when encoding or decoding queries.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithWorkers configures the number of goroutines used by collection
// filtering. Values below 2 keep filtering sequential.
//
// Predicate evaluation is CPU-bound and cheap per item, so the useful range
// tops out near GOMAXPROCS; parallelism only pays off on collections large
// enough to amortize the goroutine fan-out.
//
// If workers <= 1, parallel filtering is disabled (backward compatible).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &propfilter.BasicMetricsCollector{}
//	eng, _ := propfilter.New(cfg, propfilter.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Filters: %d, Avg latency: %dns\n", stats.FilterCount, stats.FilterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := propfilter.NewJSONLogger(slog.LevelInfo)
//	eng, _ := propfilter.New(cfg, propfilter.WithLogger(logger))
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

// WithValidationDisabled skips Config validation during construction.
// Malformed descriptors then surface the way BuildPredicate surfaces them:
// as evaluation errors or non-matching tokens.
func WithValidationDisabled() Option {
	return func(o *options) {
		o.disableValidation = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		workers:          1,
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
