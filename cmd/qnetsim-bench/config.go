package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/qnetsim/qnetsim/pkg/montecarlo"
	"github.com/qnetsim/qnetsim/pkg/network"
	"github.com/qnetsim/qnetsim/pkg/reduce"
	"github.com/qnetsim/qnetsim/pkg/topology"
)

// ErrInvalidProbRange is returned when the configured range is not an
// ordered sub-interval of [0, 1].
var ErrInvalidProbRange = errors.New("prob_range must satisfy 0 <= lo <= hi <= 1")

// Config is the YAML benchmark configuration.
type Config struct {
	Reduction   string  `yaml:"reduction" validate:"required,oneof=purify swap"`
	Threshold   int     `yaml:"threshold" validate:"gte=0"`
	MeasureProb float64 `yaml:"measure_prob" validate:"gte=0,lte=1"`

	NumIters int   `yaml:"num_iters" validate:"required,gt=0"`
	NumSteps int   `yaml:"num_steps" validate:"required,gt=0"`
	Seed     int64 `yaml:"seed"`
	Workers  int   `yaml:"workers" validate:"gte=0"`

	ProbRange *RangeConfig `yaml:"prob_range"`

	Lattice LatticeSection `yaml:"lattice" validate:"required"`
	Pair    PairSection    `yaml:"pair" validate:"required"`
}

// RangeConfig restricts the sweep's probability grid.
type RangeConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// LatticeSection selects and sizes the benchmark topology.
type LatticeSection struct {
	Type       string  `yaml:"type" validate:"required,oneof=square triangular hexagonal"`
	Rows       int     `yaml:"rows" validate:"required,gte=2"`
	Cols       int     `yaml:"cols" validate:"required,gte=2"`
	Efficiency float64 `yaml:"efficiency" validate:"gte=0,lte=1"`
	Fidelity   float64 `yaml:"fidelity" validate:"gte=0,lte=1"`
	Ground     bool    `yaml:"ground"`
}

// PairSection names the communication pair.
type PairSection struct {
	Head string `yaml:"head" validate:"required"`
	Tail string `yaml:"tail" validate:"required"`
}

// LoadConfig reads and validates a benchmark configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if r := cfg.ProbRange; r != nil {
		if r.Lo < 0 || r.Hi > 1 || r.Lo > r.Hi {
			return nil, ErrInvalidProbRange
		}
	}
	return &cfg, nil
}

// BuildSnapshot constructs the configured lattice.
func (cfg *Config) BuildSnapshot() (*network.Snapshot, error) {
	lat := topology.LatticeConfig{
		Rows:       cfg.Lattice.Rows,
		Cols:       cfg.Lattice.Cols,
		Efficiency: cfg.Lattice.Efficiency,
		Fidelity:   cfg.Lattice.Fidelity,
	}
	if cfg.Lattice.Ground {
		lat.Kind = network.KindGround
	}

	switch cfg.Lattice.Type {
	case "square":
		return topology.SquareLattice(lat)
	case "triangular":
		return topology.TriangularLattice(lat)
	case "hexagonal":
		return topology.HexagonalLattice(lat)
	default:
		return nil, fmt.Errorf("unknown lattice type %q", cfg.Lattice.Type)
	}
}

// BuildReduction constructs the configured reduction strategy.
func (cfg *Config) BuildReduction() montecarlo.Reduction {
	switch cfg.Reduction {
	case "swap":
		return montecarlo.SwapReduction(reduce.SwapOptions{Threshold: cfg.Threshold})
	default:
		return montecarlo.PurifyReduction(reduce.PurifyOptions{
			Threshold:   cfg.Threshold,
			MeasureProb: cfg.MeasureProb,
		})
	}
}

// SweepRequest assembles the full request for the engine.
func (cfg *Config) SweepRequest(snap *network.Snapshot) montecarlo.SweepRequest {
	req := montecarlo.SweepRequest{
		Snapshot:  snap,
		Selector:  montecarlo.FixedPair(cfg.Pair.Head, cfg.Pair.Tail),
		Reduction: cfg.BuildReduction(),
		NumIters:  cfg.NumIters,
		NumSteps:  cfg.NumSteps,
	}
	if cfg.ProbRange != nil {
		req.ProbRange = &montecarlo.Range{Lo: cfg.ProbRange.Lo, Hi: cfg.ProbRange.Hi}
	}
	return req
}
