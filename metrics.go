package spatialhash

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Query callbacks run on the query's goroutine at the end of iteration, so
// implementations must be safe for concurrent use when queries are.
type MetricsCollector interface {
	// RecordBuild is called once after construction.
	RecordBuild(points, cells int, duration time.Duration)

	// RecordQuery is called when a query sequence has been fully consumed
	// or abandoned. candidates counts indices examined, results counts
	// indices yielded.
	RecordQuery(exact bool, candidates, results int)

	// RecordRelocate is called after each relocation. moved reports whether
	// the point changed cell.
	RecordRelocate(moved bool, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordQuery(bool, int, int)          {}
func (NoopMetricsCollector) RecordRelocate(bool, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for tuning the radius without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildTotalNanos atomic.Int64
	QueryCount      atomic.Int64
	FastQueryCount  atomic.Int64
	Candidates      atomic.Int64
	Results         atomic.Int64
	RelocateCount   atomic.Int64
	RelocateMoves   atomic.Int64
	RelocateErrors  atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points, cells int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(exact bool, candidates, results int) {
	if exact {
		b.QueryCount.Add(1)
	} else {
		b.FastQueryCount.Add(1)
	}
	b.Candidates.Add(int64(candidates))
	b.Results.Add(int64(results))
}

// RecordRelocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelocate(moved bool, err error) {
	b.RelocateCount.Add(1)
	if err != nil {
		b.RelocateErrors.Add(1)
		return
	}
	if moved {
		b.RelocateMoves.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		QueryCount:     b.QueryCount.Load(),
		FastQueryCount: b.FastQueryCount.Load(),
		Candidates:     b.Candidates.Load(),
		Results:        b.Results.Load(),
		RelocateCount:  b.RelocateCount.Load(),
		RelocateMoves:  b.RelocateMoves.Load(),
		RelocateErrors: b.RelocateErrors.Load(),
	}
	if s.BuildCount > 0 {
		s.BuildAvgNanos = b.BuildTotalNanos.Load() / s.BuildCount
	}
	if q := s.QueryCount + s.FastQueryCount; q > 0 {
		s.CandidatesPerQuery = float64(s.Candidates) / float64(q)
	}
	if s.Candidates > 0 {
		s.HitRate = float64(s.Results) / float64(s.Candidates)
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount         int64
	BuildAvgNanos      int64
	QueryCount         int64
	FastQueryCount     int64
	Candidates         int64
	Results            int64
	CandidatesPerQuery float64
	// HitRate is results per candidate. A low value on exact queries means
	// the radius is small relative to point spacing in dense cells.
	HitRate        float64
	RelocateCount  int64
	RelocateMoves  int64
	RelocateErrors int64
}
