package move

import (
	"sync/atomic"
	"time"
)

// Metrics tracks move outcomes using atomic operations for thread-safety
type Metrics struct {
	MovesApplied    atomic.Int64
	MovesCommitted  atomic.Int64
	MovesRolledBack atomic.Int64
	MovesRejected   atomic.Int64
	MovesSuperseded atomic.Int64
	Renumbers       atomic.Int64
	Resyncs         atomic.Int64
	ResyncFailures  atomic.Int64
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	MovesApplied    int64     `json:"moves_applied"`
	MovesCommitted  int64     `json:"moves_committed"`
	MovesRolledBack int64     `json:"moves_rolled_back"`
	MovesRejected   int64     `json:"moves_rejected"`
	MovesSuperseded int64     `json:"moves_superseded"`
	Renumbers       int64     `json:"renumbers"`
	Resyncs         int64     `json:"resyncs"`
	ResyncFailures  int64     `json:"resync_failures"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		MovesApplied:    m.MovesApplied.Load(),
		MovesCommitted:  m.MovesCommitted.Load(),
		MovesRolledBack: m.MovesRolledBack.Load(),
		MovesRejected:   m.MovesRejected.Load(),
		MovesSuperseded: m.MovesSuperseded.Load(),
		Renumbers:       m.Renumbers.Load(),
		Resyncs:         m.Resyncs.Load(),
		ResyncFailures:  m.ResyncFailures.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
