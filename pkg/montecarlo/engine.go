package montecarlo

import (
	"context"
	"errors"
	"math/rand"
	"runtime"
	"time"

	"github.com/qnetsim/qnetsim/pkg/logging"
	"github.com/qnetsim/qnetsim/pkg/metrics"
	"github.com/qnetsim/qnetsim/pkg/network"
	"github.com/qnetsim/qnetsim/pkg/parallel"
	"github.com/qnetsim/qnetsim/pkg/reduce"
)

// ErrInvalidIters is returned when the trial count is not positive.
var ErrInvalidIters = errors.New("number of iterations must be positive")

// EngineConfig configures a Monte Carlo engine.
type EngineConfig struct {
	Logger  logging.Logger
	Metrics *metrics.Registry

	// Workers bounds the trial fan-out; 0 selects GOMAXPROCS-many.
	Workers int

	// Seed is the base of the per-trial RNG streams. Trial i draws from
	// rand.NewSource(Seed + offset + i), so a fixed seed reproduces the
	// same samples regardless of scheduling.
	Seed int64
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Logger:  logging.DefaultLogger(),
		Metrics: metrics.DefaultRegistry(),
		Workers: runtime.NumCPU(),
		Seed:    time.Now().UnixNano(),
	}
}

// Engine runs percolation trials and probability sweeps.
type Engine struct {
	logger  logging.Logger
	metrics *metrics.Registry
	workers int
	seed    int64
}

// NewEngine creates an engine with the default configuration and the given
// base seed
func NewEngine(seed int64) *Engine {
	cfg := DefaultEngineConfig()
	cfg.Seed = seed
	return NewEngineWithConfig(cfg)
}

// NewEngineWithConfig creates an engine with a custom configuration
func NewEngineWithConfig(cfg EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewRegistry()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Engine{
		logger:  cfg.Logger.With(logging.Component("montecarlo")),
		metrics: cfg.Metrics,
		workers: cfg.Workers,
		seed:    cfg.Seed,
	}
}

// GenerateSamples runs numIters independent trials at the given percolation
// probability, fanned out across the engine's workers. Each trial owns its
// own snapshot copy and its own seeded RNG stream. Cancellation is honored
// at trial granularity: trials already running finish, pending trials are
// skipped and the context error is returned.
func (e *Engine) GenerateSamples(ctx context.Context, snap *network.Snapshot, selector PairSelector, red Reduction, numIters int, prob float64) ([]Sample, error) {
	return e.generateSamples(ctx, snap, selector, red, numIters, prob, 0)
}

// generateSamples is GenerateSamples with an extra seed offset so each
// sweep grid point gets a disjoint block of RNG streams.
func (e *Engine) generateSamples(ctx context.Context, snap *network.Snapshot, selector PairSelector, red Reduction, numIters int, prob float64, seedOffset int64) ([]Sample, error) {
	if numIters <= 0 {
		return nil, ErrInvalidIters
	}

	samples := make([]Sample, numIters)
	err := parallel.ForEachN(ctx, e.workers, numIters, func(ctx context.Context, i int) error {
		rng := rand.New(rand.NewSource(e.seed + seedOffset + int64(i)))
		sample, err := e.runTrial(snap, selector, red, prob, rng)
		if err != nil {
			return err
		}
		samples[i] = sample
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// runTrial percolates, checks pair connectivity, and reduces between the
// first pair, recording trial and reduction metrics along the way.
func (e *Engine) runTrial(snap *network.Snapshot, selector PairSelector, red Reduction, prob float64, rng *rand.Rand) (Sample, error) {
	trialStart := time.Now()

	work, pairs, err := Percolate(snap, prob, selector, rng)
	if err != nil {
		e.metrics.RecordTrial(red.Name, metrics.StatusError, time.Since(trialStart))
		return Sample{}, err
	}
	e.metrics.RecordPercolation(snap.NodeCount() - work.NodeCount())

	for _, p := range pairs {
		if !work.HasPath(p.Head, p.Tail) {
			e.metrics.RecordTrial(red.Name, metrics.StatusDisconnected, time.Since(trialStart))
			return Sample{Outcome: reduce.NotConnected(), Pairs: pairs}, nil
		}
	}

	reduceStart := time.Now()
	out, err := red.Apply(work, pairs[0].Head, pairs[0].Tail)
	if err != nil {
		e.metrics.RecordReduction(red.Name, metrics.StatusError, time.Since(reduceStart), 0)
		e.metrics.RecordTrial(red.Name, metrics.StatusError, time.Since(trialStart))
		return Sample{}, err
	}

	status := metrics.StatusConnected
	if !out.Connected {
		status = metrics.StatusDisconnected
	}
	e.metrics.RecordReduction(red.Name, status, time.Since(reduceStart), out.PathsConsumed)
	e.metrics.RecordTrial(red.Name, status, time.Since(trialStart))
	return Sample{Outcome: out, Pairs: pairs}, nil
}
