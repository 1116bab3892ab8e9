package govec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package prommetrics for a ready-made adapter).
type MetricsCollector interface {
	// RecordReallocation is called after each attempt to replace the raw
	// block. relocated is the number of live elements carried over, err is
	// nil if successful.
	RecordReallocation(oldCapacity, newCapacity, relocated int, duration time.Duration, err error)

	// RecordElementFailure is called when an element hook returns an error.
	RecordElementFailure(op Op)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReallocation(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordElementFailure(Op)                                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReallocationCount      atomic.Int64
	ReallocationErrors     atomic.Int64
	ReallocationTotalNanos atomic.Int64
	RelocatedElements      atomic.Int64
	ElementFailures        atomic.Int64
	PeakCapacity           atomic.Int64
}

// RecordReallocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReallocation(_, newCapacity, relocated int, duration time.Duration, err error) {
	b.ReallocationCount.Add(1)
	b.ReallocationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReallocationErrors.Add(1)
		return
	}
	b.RelocatedElements.Add(int64(relocated))
	for {
		peak := b.PeakCapacity.Load()
		if int64(newCapacity) <= peak || b.PeakCapacity.CompareAndSwap(peak, int64(newCapacity)) {
			break
		}
	}
}

// RecordElementFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordElementFailure(Op) {
	b.ElementFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReallocationCount:    b.ReallocationCount.Load(),
		ReallocationErrors:   b.ReallocationErrors.Load(),
		ReallocationAvgNanos: b.getAvgReallocationNanos(),
		RelocatedElements:    b.RelocatedElements.Load(),
		ElementFailures:      b.ElementFailures.Load(),
		PeakCapacity:         b.PeakCapacity.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReallocationNanos() int64 {
	count := b.ReallocationCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReallocationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector metrics.
type BasicMetricsStats struct {
	ReallocationCount    int64
	ReallocationErrors   int64
	ReallocationAvgNanos int64
	RelocatedElements    int64
	ElementFailures      int64
	PeakCapacity         int64
}

// Ensure implementations satisfy interface.
var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)
