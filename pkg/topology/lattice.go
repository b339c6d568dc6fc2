// Package topology builds benchmark network snapshots: regular lattices
// for percolation studies and the small named networks used by demos and
// tests.
package topology

import (
	"errors"
	"fmt"

	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/network"
)

// ErrInvalidDimensions is returned when a lattice has fewer than two rows
// or columns.
var ErrInvalidDimensions = errors.New("lattice dimensions must be at least 2x2")

// LatticeConfig configures a lattice builder. Zero Efficiency or Fidelity
// selects the lossless default of 1. Kind applies to every lattice node;
// the zero value builds plain nodes.
type LatticeConfig struct {
	Rows int
	Cols int

	// Efficiency and Fidelity are applied uniformly to every link.
	Efficiency float64
	Fidelity   float64

	Kind network.Kind
}

func (cfg *LatticeConfig) normalize() error {
	if cfg.Rows < 2 || cfg.Cols < 2 {
		return ErrInvalidDimensions
	}
	if cfg.Efficiency == 0 {
		cfg.Efficiency = 1
	}
	if cfg.Fidelity == 0 {
		cfg.Fidelity = 1
	}
	return nil
}

func (cfg LatticeConfig) linkCost() cost.Vector {
	return cost.Vector{cost.Efficiency: cfg.Efficiency, cost.Fidelity: cfg.Fidelity}
}

// NodeName renders the grid coordinate name used by every lattice builder.
func NodeName(x, y int) string {
	return fmt.Sprintf("(%d, %d)", x, y)
}

// builder accumulates construction steps and keeps the first error.
type builder struct {
	snap *network.Snapshot
	err  error
}

func newBuilder() *builder {
	return &builder{snap: network.NewSnapshot()}
}

func (b *builder) addNode(n *network.Node) {
	if b.err != nil {
		return
	}
	b.err = b.snap.AddNode(n)
}

func (b *builder) addEdge(u, v string, cv cost.Vector) {
	if b.err != nil {
		return
	}
	_, b.err = b.snap.AddEdge(u, v, cv)
}

func (b *builder) result() (*network.Snapshot, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.snap, nil
}

// SquareLattice builds a Cols x Rows grid with orthogonal links. Node
// (x, y) sits at column x, row y.
func SquareLattice(cfg LatticeConfig) (*network.Snapshot, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	b := newBuilder()
	for x := 0; x < cfg.Cols; x++ {
		for y := 0; y < cfg.Rows; y++ {
			b.addNode(network.NewNode(NodeName(x, y), cfg.Kind))
		}
	}
	cv := cfg.linkCost()
	for x := 0; x < cfg.Cols; x++ {
		for y := 0; y < cfg.Rows; y++ {
			if x+1 < cfg.Cols {
				b.addEdge(NodeName(x, y), NodeName(x+1, y), cv)
			}
			if y+1 < cfg.Rows {
				b.addEdge(NodeName(x, y), NodeName(x, y+1), cv)
			}
		}
	}
	return b.result()
}

// TriangularLattice builds a triangulated grid: the square lattice plus
// one diagonal per cell, giving every interior node six neighbors.
func TriangularLattice(cfg LatticeConfig) (*network.Snapshot, error) {
	snap, err := SquareLattice(cfg)
	if err != nil {
		return nil, err
	}

	cv := cfg.linkCost()
	for x := 0; x+1 < cfg.Cols; x++ {
		for y := 0; y+1 < cfg.Rows; y++ {
			if _, err := snap.AddEdge(NodeName(x, y), NodeName(x+1, y+1), cv); err != nil {
				return nil, err
			}
		}
	}
	return snap, nil
}

// HexagonalLattice builds a honeycomb in the brick-wall representation:
// every horizontal link is present and a vertical link exists only where
// the coordinate parity matches, so every node has degree at most 3.
func HexagonalLattice(cfg LatticeConfig) (*network.Snapshot, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	b := newBuilder()
	for x := 0; x < cfg.Cols; x++ {
		for y := 0; y < cfg.Rows; y++ {
			b.addNode(network.NewNode(NodeName(x, y), cfg.Kind))
		}
	}
	cv := cfg.linkCost()
	for x := 0; x < cfg.Cols; x++ {
		for y := 0; y < cfg.Rows; y++ {
			if x+1 < cfg.Cols {
				b.addEdge(NodeName(x, y), NodeName(x+1, y), cv)
			}
			if y+1 < cfg.Rows && (x+y)%2 == 0 {
				b.addEdge(NodeName(x, y), NodeName(x, y+1), cv)
			}
		}
	}
	return b.result()
}
