package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSweepMetrics() {
	r.SweepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qnetsim_sweeps_total",
			Help: "Total number of probability sweeps executed",
		},
		[]string{"reduction", "status"},
	)

	r.SweepDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qnetsim_sweep_duration_seconds",
			Help:    "Probability sweep duration in seconds",
			Buckets: []float64{0.01, 0.1, 1.0, 10.0, 60.0, 300.0},
		},
	)

	r.SweepRowsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "qnetsim_sweep_rows_total",
			Help: "Total number of sweep grid rows produced",
		},
	)

	r.SweepsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_sweeps_in_flight",
			Help: "Number of sweeps currently running",
		},
	)

	r.WorkersActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_workers_active",
			Help: "Number of worker goroutines currently running trials",
		},
	)
}
