package rowhash

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordHash is called after each hash call. rows is the number of
	// rows hashed, duration the total time taken, err nil on success.
	RecordHash(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

// RecordHash implements MetricsCollector.
func (NoopMetricsCollector) RecordHash(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	HashCount      atomic.Int64
	HashErrors     atomic.Int64
	RowsHashed     atomic.Int64
	HashTotalNanos atomic.Int64
}

// RecordHash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHash(rows int, duration time.Duration, err error) {
	b.HashCount.Add(1)
	b.HashTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.HashErrors.Add(1)
		return
	}
	b.RowsHashed.Add(int64(rows))
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	HashCount    int64
	HashErrors   int64
	RowsHashed   int64
	HashAvgNanos int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.HashCount.Load()
	var avg int64
	if count > 0 {
		avg = b.HashTotalNanos.Load() / count
	}
	return BasicMetricsStats{
		HashCount:    count,
		HashErrors:   b.HashErrors.Load(),
		RowsHashed:   b.RowsHashed.Load(),
		HashAvgNanos: avg,
	}
}
