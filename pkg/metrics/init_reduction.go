package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initReductionMetrics() {
	r.ReductionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qnetsim_reductions_total",
			Help: "Total number of graph reductions executed",
		},
		[]string{"reduction", "status"},
	)

	r.ReductionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qnetsim_reduction_duration_seconds",
			Help:    "Graph reduction duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"reduction"},
	)

	r.ReductionPathsUsed = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qnetsim_reduction_paths_consumed",
			Help:    "Number of paths consumed per reduction",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"reduction"},
	)

	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qnetsim_trials_total",
			Help: "Total number of Monte Carlo trials executed",
		},
		[]string{"reduction", "status"},
	)

	r.TrialDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qnetsim_trial_duration_seconds",
			Help:    "Monte Carlo trial duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"reduction"},
	)

	r.PercolationRemovals = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qnetsim_percolation_nodes_removed",
			Help:    "Number of nodes removed per percolation pass",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		},
	)
}
