package simsearch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after item registration. count is the number of
	// items added; duration includes per-item state construction.
	RecordAdd(count int, duration time.Duration)

	// RecordRank is called after each rank or search operation. n is the
	// number of results produced.
	RecordRank(n int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int, time.Duration)  {}
func (NoopMetricsCollector) RecordRank(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount       atomic.Int64
	AddItems       atomic.Int64
	AddTotalNanos  atomic.Int64
	RankCount      atomic.Int64
	RankResults    atomic.Int64
	RankTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(count int, duration time.Duration) {
	b.AddCount.Add(1)
	b.AddItems.Add(int64(count))
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(n int, duration time.Duration) {
	b.RankCount.Add(1)
	b.RankResults.Add(int64(n))
	b.RankTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:     b.AddCount.Load(),
		AddItems:     b.AddItems.Load(),
		RankCount:    b.RankCount.Load(),
		RankResults:  b.RankResults.Load(),
		RankAvgNanos: b.getAvgRankNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgRankNanos() int64 {
	count := b.RankCount.Load()
	if count == 0 {
		return 0
	}
	return b.RankTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount     int64
	AddItems     int64
	RankCount    int64
	RankResults  int64
	RankAvgNanos int64
}
