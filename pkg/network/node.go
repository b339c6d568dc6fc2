// Package network provides the in-memory network snapshot consumed by the
// reduction and Monte Carlo engines: an undirected multigraph whose nodes
// are quantum-capable stations and whose edges are entanglement links
// carrying cost vectors. Snapshots have value semantics: Clone produces a
// fully independent copy, so each simulation trial can own one outright.
package network

import "github.com/qnetsim/qnetsim/pkg/cost"

// Kind is the closed set of node variants.
type Kind int

const (
	// KindPlain is an end-user station with no repeater capability.
	KindPlain Kind = iota
	// KindGround is a ground station; swap operations require a ground
	// station on both sides of the swapper.
	KindGround
	// KindSwapper is an entanglement-swapping repeater.
	KindSwapper
	// KindSatellite is an orbital relay. The time-dependent orbit model is
	// out of scope; satellites behave as fixed stations here.
	KindSatellite
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Plain"
	case KindGround:
		return "Ground"
	case KindSwapper:
		return "Swapper"
	case KindSatellite:
		return "Satellite"
	default:
		return "Unknown"
	}
}

// DefaultSwapProb is the swap success probability assigned to swappers that
// do not specify one.
const DefaultSwapProb = 1.0

// Node is a station in the network. Costs is the node's intrinsic cost
// contribution to every path that visits it (e.g. residual loss at a
// repeater); SwapProb is meaningful for swappers only.
type Node struct {
	Name     string
	Kind     Kind
	Costs    cost.Vector
	SwapProb float64
}

// NewNode creates a node of the given kind with the identity cost
// contribution (efficiency 1, fidelity 1).
func NewNode(name string, kind Kind) *Node {
	return &Node{
		Name:     name,
		Kind:     kind,
		Costs:    cost.Vector{cost.Efficiency: 1, cost.Fidelity: 1},
		SwapProb: DefaultSwapProb,
	}
}

// IsGround reports whether the node is a ground station.
func (n *Node) IsGround() bool { return n.Kind == KindGround }

// IsSwapper reports whether the node is an entanglement swapper.
func (n *Node) IsSwapper() bool { return n.Kind == KindSwapper }

// Clone returns an independent copy of the node.
func (n *Node) Clone() *Node {
	out := *n
	out.Costs = n.Costs.Clone()
	return &out
}
