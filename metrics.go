package seiscube

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
//	    decodedCells prometheus.Counter
//	    readLatency  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSubvolume(decoded, returned int, d time.Duration, err error) {
//	    p.decodedCells.Add(float64(decoded))
//	    p.readLatency.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordSubvolume is called after each subvolume read.
	// decoded is the number of samples in the bounding box requested from the
	// reader, returned is the number of samples after steps were applied.
	// Both are zero when the request was rejected.
	RecordSubvolume(decoded, returned int, duration time.Duration, err error)

	// RecordViewRead is called after each keyed view read.
	// view is the view name, records the number of records requested.
	RecordViewRead(view string, records int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSubvolume(int, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordViewRead(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SubvolumeCount      atomic.Int64
	SubvolumeErrors     atomic.Int64
	SubvolumeTotalNanos atomic.Int64
	DecodedCells        atomic.Int64
	ReturnedCells       atomic.Int64
	ViewReadCount       atomic.Int64
	ViewReadErrors      atomic.Int64
	ViewRecords         atomic.Int64
	ViewReadTotalNanos  atomic.Int64
}

// RecordSubvolume implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubvolume(decoded, returned int, duration time.Duration, err error) {
	b.SubvolumeCount.Add(1)
	b.SubvolumeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SubvolumeErrors.Add(1)
		return
	}
	b.DecodedCells.Add(int64(decoded))
	b.ReturnedCells.Add(int64(returned))
}

// RecordViewRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordViewRead(_ string, records int, duration time.Duration, err error) {
	b.ViewReadCount.Add(1)
	b.ViewReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ViewReadErrors.Add(1)
		return
	}
	b.ViewRecords.Add(int64(records))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SubvolumeCount:    b.SubvolumeCount.Load(),
		SubvolumeErrors:   b.SubvolumeErrors.Load(),
		SubvolumeAvgNanos: avg(b.SubvolumeTotalNanos.Load(), b.SubvolumeCount.Load()),
		DecodedCells:      b.DecodedCells.Load(),
		ReturnedCells:     b.ReturnedCells.Load(),
		ViewReadCount:     b.ViewReadCount.Load(),
		ViewReadErrors:    b.ViewReadErrors.Load(),
		ViewRecords:       b.ViewRecords.Load(),
		ViewReadAvgNanos:  avg(b.ViewReadTotalNanos.Load(), b.ViewReadCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SubvolumeCount    int64
	SubvolumeErrors   int64
	SubvolumeAvgNanos int64
	DecodedCells      int64
	ReturnedCells     int64
	ViewReadCount     int64
	ViewReadErrors    int64
	ViewRecords       int64
	ViewReadAvgNanos  int64
}

// DecodeAmplification returns decoded cells per returned cell, or 0 if nothing was returned.
// Values above 1 indicate strided reads paying for samples they discard.
func (s BasicMetricsStats) DecodeAmplification() float64 {
	if s.ReturnedCells == 0 {
		return 0
	}
	return float64(s.DecodedCells) / float64(s.ReturnedCells)
}
