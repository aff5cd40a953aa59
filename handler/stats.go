package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts entries rendered and written
	ProcessedTotal uint64
	// FilteredTotal counts entries below the handler level
	FilteredTotal uint64
	// FailedTotal counts entries that could not be rendered or written
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FilteredTotal  uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
		FilteredTotal:  atomic.LoadUint64(&s.FilteredTotal),
		FailedTotal:    atomic.LoadUint64(&s.FailedTotal),
	}
}
