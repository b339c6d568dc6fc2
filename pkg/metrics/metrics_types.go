// Package metrics exposes Prometheus instrumentation for the simulator:
// per-reduction counters and latency histograms, Monte Carlo trial
// accounting, percolation statistics, and sweep progress.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Reduction Metrics
	ReductionsTotal    *prometheus.CounterVec
	ReductionDuration  *prometheus.HistogramVec
	ReductionPathsUsed *prometheus.HistogramVec

	// Monte Carlo Trial Metrics
	TrialsTotal         *prometheus.CounterVec
	TrialDuration       *prometheus.HistogramVec
	PercolationRemovals prometheus.Histogram

	// Sweep Metrics
	SweepsTotal    *prometheus.CounterVec
	SweepDuration  prometheus.Histogram
	SweepRowsTotal prometheus.Counter
	SweepsInFlight prometheus.Gauge
	WorkersActive  prometheus.Gauge

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initReductionMetrics()
	r.initSweepMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
