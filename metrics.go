package gosoup

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAppend is called after each append operation.
	// duration is the total time taken, err is nil if successful.
	RecordAppend(duration time.Duration, err error)

	// RecordRead is called after each element or partition read.
	RecordRead(duration time.Duration, err error)

	// RecordEviction is called whenever a resident page is saved to make
	// room for a conflicting page.
	RecordEviction(pageNumber uint64)

	// RecordPageLoad is called whenever a page is fetched back from the
	// backing store.
	RecordPageLoad(pageNumber uint64)

	// RecordFlush is called after an explicit flush or the close write-back.
	// pages is the number of resident pages swept.
	RecordFlush(pages int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(time.Duration, error)     {}
func (NoopMetricsCollector) RecordRead(time.Duration, error)       {}
func (NoopMetricsCollector) RecordEviction(uint64)                 {}
func (NoopMetricsCollector) RecordPageLoad(uint64)                 {}
func (NoopMetricsCollector) RecordFlush(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount      atomic.Int64
	AppendErrors     atomic.Int64
	AppendTotalNanos atomic.Int64
	ReadCount        atomic.Int64
	ReadErrors       atomic.Int64
	ReadTotalNanos   atomic.Int64
	EvictionCount    atomic.Int64
	PageLoadCount    atomic.Int64
	FlushCount       atomic.Int64
	FlushErrors      atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(duration time.Duration, err error) {
	b.AppendCount.Add(1)
	b.AppendTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AppendErrors.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordEviction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEviction(uint64) {
	b.EvictionCount.Add(1)
}

// RecordPageLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPageLoad(uint64) {
	b.PageLoadCount.Add(1)
}

// RecordFlush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlush(pages int, duration time.Duration, err error) {
	b.FlushCount.Add(1)
	if err != nil {
		b.FlushErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AppendCount:    b.AppendCount.Load(),
		AppendErrors:   b.AppendErrors.Load(),
		AppendAvgNanos: b.getAvgAppendNanos(),
		ReadCount:      b.ReadCount.Load(),
		ReadErrors:     b.ReadErrors.Load(),
		ReadAvgNanos:   b.getAvgReadNanos(),
		EvictionCount:  b.EvictionCount.Load(),
		PageLoadCount:  b.PageLoadCount.Load(),
		FlushCount:     b.FlushCount.Load(),
		FlushErrors:    b.FlushErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAppendNanos() int64 {
	count := b.AppendCount.Load()
	if count == 0 {
		return 0
	}
	return b.AppendTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgReadNanos() int64 {
	count := b.ReadCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AppendCount    int64
	AppendErrors   int64
	AppendAvgNanos int64
	ReadCount      int64
	ReadErrors     int64
	ReadAvgNanos   int64
	EvictionCount  int64
	PageLoadCount  int64
	FlushCount     int64
	FlushErrors    int64
}
