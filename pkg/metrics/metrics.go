package metrics

import (
	"runtime"
	"time"
)

// Status label values shared by reductions, trials, and sweeps.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusError        = "error"
	StatusCompleted    = "completed"
	StatusCancelled    = "cancelled"
)

// RecordReduction records a single graph reduction with its duration and
// the number of paths it consumed
func (r *Registry) RecordReduction(reduction, status string, duration time.Duration, pathsConsumed int) {
	r.ReductionsTotal.WithLabelValues(reduction, status).Inc()
	r.ReductionDuration.WithLabelValues(reduction).Observe(duration.Seconds())
	if pathsConsumed > 0 {
		r.ReductionPathsUsed.WithLabelValues(reduction).Observe(float64(pathsConsumed))
	}
}

// RecordTrial records a Monte Carlo trial
func (r *Registry) RecordTrial(reduction, status string, duration time.Duration) {
	r.TrialsTotal.WithLabelValues(reduction, status).Inc()
	r.TrialDuration.WithLabelValues(reduction).Observe(duration.Seconds())
}

// RecordPercolation records how many nodes a percolation pass removed
func (r *Registry) RecordPercolation(removed int) {
	r.PercolationRemovals.Observe(float64(removed))
}

// RecordSweep records a completed probability sweep
func (r *Registry) RecordSweep(reduction, status string, duration time.Duration, rows int) {
	r.SweepsTotal.WithLabelValues(reduction, status).Inc()
	r.SweepDuration.Observe(duration.Seconds())
	r.SweepRowsTotal.Add(float64(rows))
}

// UpdateSystemMetrics refreshes process-level gauges
func (r *Registry) UpdateSystemMetrics(start time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.UptimeSeconds.Set(time.Since(start).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}
