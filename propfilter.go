package propfilter

import (
	"context"
	"time"

	"github.com/youdz/propfilter/codec"
)

// Engine is a reusable property-filter handle: one validated configuration
// plus the ambient plumbing (codec, logger, metrics) shared by every query
// evaluated against it.
//
// An Engine holds no per-query state and is safe for concurrent use.
type Engine struct {
	cfg     *Config
	codec   codec.Codec
	metrics MetricsCollector
	logger  *Logger
	workers int
}

// New creates an Engine for cfg.
//
// cfg must be non-nil; use BuildPredicate directly when "no configuration"
// should silently disable filtering. The configuration is validated unless
// WithValidationDisabled is given.
func New(cfg *Config, optFns ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	opts := applyOptions(optFns)

	if !opts.disableValidation {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return &Engine{
		cfg:     cfg,
		codec:   opts.codec,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
		workers: opts.workers,
	}, nil
}

// Predicate compiles query into a predicate over the engine's configuration.
// The property map is compiled fresh per call and captured by the returned
// closure, so the predicate stays valid independently of the engine.
func (e *Engine) Predicate(query Query) Predicate {
	start := time.Now()
	p := BuildPredicate(e.cfg, query)
	e.metrics.RecordBuild(len(query.Tokens), time.Since(start))
	return p
}

// Match evaluates query against a single item.
func (e *Engine) Match(item Item, query Query) (bool, error) {
	return e.Predicate(query)(item)
}

// Filter returns the items matching query, preserving input order.
//
// With WithWorkers(n > 1) evaluation fans out across n goroutines; the
// first evaluation error cancels outstanding work and is returned.
func (e *Engine) Filter(ctx context.Context, items []Item, query Query) ([]Item, error) {
	start := time.Now()

	p := e.Predicate(query)
	out, err := FilterItems(ctx, items, p, e.workers)

	duration := time.Since(start)
	e.metrics.RecordFilter(len(items), len(out), duration, err)
	e.logger.LogFilter(ctx, len(items), len(out), duration, err)

	return out, err
}

// FilterAny converts records with the engine's codec and returns the
// matching records, preserving input order. Records may be structs, maps or
// anything else the codec renders as an object.
func (e *Engine) FilterAny(ctx context.Context, records []any, query Query) ([]any, error) {
	start := time.Now()

	out, err := filterConverted(ctx, records, e.codec, e.Predicate(query), e.workers)

	duration := time.Since(start)
	e.metrics.RecordFilter(len(records), len(out), duration, err)
	e.logger.LogFilter(ctx, len(records), len(out), duration, err)

	return out, err
}

// ItemFromAny converts v into an Item using the engine's codec. See the
// package-level ItemFromAny for the conversion rules.
func (e *Engine) ItemFromAny(v any) (Item, error) {
	return itemFromAny(v, e.codec)
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}
