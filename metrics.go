package propfilter

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    buildCounter    prometheus.Counter
//	    filterHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordBuild(tokens int, duration time.Duration) {
//	    p.buildCounter.Inc()
//	    // ... record token count, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBuild is called after each predicate construction.
	// tokens is the number of query tokens compiled against.
	RecordBuild(tokens int, duration time.Duration)

	// RecordFilter is called after each collection filter operation.
	// total is the number of items tested, matched the number retained,
	// err is nil if successful.
	RecordFilter(total, matched int, duration time.Duration, err error)

	// RecordSearch is called after each index search operation.
	// fastPath reports whether the query was answered from posting lists
	// instead of a scan.
	RecordSearch(tokens int, fastPath bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)               {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordSearch(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	FilterCount      atomic.Int64
	FilterErrors     atomic.Int64
	FilterItems      atomic.Int64
	FilterMatched    atomic.Int64
	FilterTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchFastPath   atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(tokens int, duration time.Duration) {
	b.BuildCount.Add(1)
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(total, matched int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterItems.Add(int64(total))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FilterErrors.Add(1)
		return
	}
	b.FilterMatched.Add(int64(matched))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(tokens int, fastPath bool, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if fastPath {
		b.SearchFastPath.Add(1)
	}
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		FilterCount:    b.FilterCount.Load(),
		FilterErrors:   b.FilterErrors.Load(),
		FilterItems:    b.FilterItems.Load(),
		FilterMatched:  b.FilterMatched.Load(),
		FilterAvgNanos: b.getAvgFilterNanos(),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchFastPath: b.SearchFastPath.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgFilterNanos() int64 {
	count := b.FilterCount.Load()
	if count == 0 {
		return 0
	}
	return b.FilterTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	FilterCount    int64
	FilterErrors   int64
	FilterItems    int64
	FilterMatched  int64
	FilterAvgNanos int64
	SearchCount    int64
	SearchErrors   int64
	SearchFastPath int64
	SearchAvgNanos int64
}
