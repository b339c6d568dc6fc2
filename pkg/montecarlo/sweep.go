package montecarlo

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/logging"
	"github.com/qnetsim/qnetsim/pkg/metrics"
	"github.com/qnetsim/qnetsim/pkg/network"
)

var (
	// ErrInvalidSteps is returned when the grid size is not positive.
	ErrInvalidSteps = errors.New("number of sweep steps must be positive")

	// ErrInvalidRange is returned when the probability range is not an
	// ordered sub-interval of [0, 1].
	ErrInvalidRange = errors.New("probability range must satisfy 0 <= lo <= hi <= 1")

	// ErrNilSnapshot is returned when a sweep request carries no snapshot.
	ErrNilSnapshot = errors.New("sweep snapshot must not be nil")
)

// Range is a closed probability interval.
type Range struct {
	Lo float64
	Hi float64
}

func (r Range) validate() error {
	if r.Lo < 0 || r.Hi > 1 || r.Lo > r.Hi {
		return ErrInvalidRange
	}
	return nil
}

// SweepRequest describes one probability sweep.
type SweepRequest struct {
	Snapshot  *network.Snapshot
	Selector  PairSelector
	Reduction Reduction

	// Scorer evaluates each pair on a reduced network; nil selects
	// BestPathScore.
	Scorer PairScorer

	// NumIters is the trial count per grid point.
	NumIters int

	// NumSteps is the grid size; the grid is inclusive of both range ends.
	NumSteps int

	// ProbRange restricts the sweep; nil sweeps the full [0, 1].
	ProbRange *Range
}

// Row is one grid point of a sweep result: the percolation probability and
// the across-trial mean and unbiased standard error per cost dimension.
type Row struct {
	Probability float64
	Mean        cost.Vector
	StdErr      cost.Vector
}

// Table is a sweep result. Rows follow probability-grid order and
// Dimensions is fixed before the sweep from the plain dimensions of the
// original snapshot's template cost vector.
type Table struct {
	RunID      string
	Dimensions []string
	Rows       []Row
}

// Sweep runs a full probability sweep: for every grid point it generates
// NumIters samples, scores them, and aggregates per-dimension statistics.
func (e *Engine) Sweep(ctx context.Context, req SweepRequest) (*Table, error) {
	if req.Snapshot == nil {
		return nil, ErrNilSnapshot
	}
	if req.NumIters <= 0 {
		return nil, ErrInvalidIters
	}
	if req.NumSteps <= 0 {
		return nil, ErrInvalidSteps
	}
	probRange := Range{Lo: 0, Hi: 1}
	if req.ProbRange != nil {
		probRange = *req.ProbRange
	}
	if err := probRange.validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := e.logger.With(logging.RunID(runID), logging.Reduction(req.Reduction.Name))

	dims := req.Snapshot.Template.PlainDimensions()
	sort.Strings(dims)

	e.metrics.SweepsInFlight.Inc()
	defer e.metrics.SweepsInFlight.Dec()
	sweepStart := time.Now()

	logger.Info("sweep started",
		logging.Int("num_steps", req.NumSteps),
		logging.Trials(req.NumIters),
		logging.Float64("prob_lo", probRange.Lo),
		logging.Float64("prob_hi", probRange.Hi),
		logging.Nodes(req.Snapshot.NodeCount()),
		logging.Workers(e.workers),
		logging.Seed(e.seed),
	)

	grid := linspace(probRange.Lo, probRange.Hi, req.NumSteps)
	table := &Table{
		RunID:      runID,
		Dimensions: dims,
		Rows:       make([]Row, 0, len(grid)),
	}

	for step, prob := range grid {
		seedOffset := int64(step) * int64(req.NumIters)
		samples, err := e.generateSamples(ctx, req.Snapshot, req.Selector, req.Reduction, req.NumIters, prob, seedOffset)
		if err != nil {
			status := metrics.StatusError
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				status = metrics.StatusCancelled
			}
			e.metrics.RecordSweep(req.Reduction.Name, status, time.Since(sweepStart), len(table.Rows))
			logger.Error("sweep aborted", logging.Probability(prob), logging.Error(err))
			return nil, err
		}

		scores := make([]cost.Vector, len(samples))
		for i, s := range samples {
			cv, err := Score(s.Outcome, s.Pairs, req.Scorer)
			if err != nil {
				e.metrics.RecordSweep(req.Reduction.Name, metrics.StatusError, time.Since(sweepStart), len(table.Rows))
				return nil, err
			}
			scores[i] = cv
		}

		mean, stderr := aggregateScores(scores, dims)
		table.Rows = append(table.Rows, Row{Probability: prob, Mean: mean, StdErr: stderr})
		logger.Debug("grid point scored", logging.Probability(prob), logging.Trials(len(samples)))
	}

	e.metrics.RecordSweep(req.Reduction.Name, metrics.StatusCompleted, time.Since(sweepStart), len(table.Rows))
	logger.Info("sweep completed",
		logging.Count(len(table.Rows)),
		logging.Latency(time.Since(sweepStart)),
	)
	return table, nil
}

// linspace builds an evenly spaced inclusive grid of n points over [lo, hi].
// A single-point grid collapses to lo.
func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	grid := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	// Pin the last point to avoid accumulated rounding drift.
	grid[n-1] = hi
	return grid
}

// aggregateScores computes the per-dimension mean and unbiased standard
// error (sample std with ddof=1, divided by sqrt n) over the trial scores.
// A dimension observed fewer than twice gets a NaN standard error; one
// never observed gets NaN for both.
func aggregateScores(scores []cost.Vector, dims []string) (mean, stderr cost.Vector) {
	mean = cost.Vector{}
	stderr = cost.Vector{}
	for _, dim := range dims {
		vals := make([]float64, 0, len(scores))
		for _, cv := range scores {
			if v, ok := cv[dim]; ok {
				vals = append(vals, v)
			}
		}
		n := float64(len(vals))
		if n == 0 {
			mean[dim] = math.NaN()
			stderr[dim] = math.NaN()
			continue
		}
		var sum float64
		for _, v := range vals {
			sum += v
		}
		m := sum / n
		mean[dim] = m
		if n < 2 {
			stderr[dim] = math.NaN()
			continue
		}
		var ss float64
		for _, v := range vals {
			d := v - m
			ss += d * d
		}
		stderr[dim] = math.Sqrt(ss/(n-1)) / math.Sqrt(n)
	}
	return mean, stderr
}
