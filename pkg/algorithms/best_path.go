package algorithms

import (
	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/network"
)

// IsQualityDimension reports whether the dimension is maximized by
// convention during best-path selection. Efficiency and fidelity are
// quality-like; every other dimension is treated as loss-like and
// minimized.
func IsQualityDimension(dim string) bool {
	return dim == cost.Efficiency || dim == cost.Fidelity
}

// BestPath returns the path between head and tail that optimizes the
// resolved value of the given cost dimension: maximized for quality
// dimensions, minimized otherwise.
//
// All simple node sequences are considered; for each hop the parallel-edge
// key is chosen by the same criterion, which is exact because dimensions
// aggregate per hop independently. Ties keep the first candidate found in
// the fixed traversal order. Returns (nil, nil) when no path exists.
func BestPath(snap *network.Snapshot, head, tail, dim string) (*network.Path, error) {
	sequences, err := AllSimplePaths(snap, head, tail)
	if err != nil {
		return nil, err
	}
	if len(sequences) == 0 {
		return nil, nil
	}

	quality := IsQualityDimension(dim)
	var best *network.Path
	var bestValue float64

	for _, names := range sequences {
		keys := make([]int, len(names)-1)
		for i := 0; i < len(names)-1; i++ {
			keys[i] = chooseEdgeKey(snap, names[i], names[i+1], dim, quality)
		}
		p, err := network.NewPath(snap, names, keys)
		if err != nil {
			return nil, err
		}
		value := p.CostVector()[dim]
		if best == nil ||
			(quality && value > bestValue) ||
			(!quality && value < bestValue) {
			best = p
			bestValue = value
		}
	}
	return best, nil
}

// chooseEdgeKey picks, among the parallel edges between u and v, the key
// whose contribution is best for the optimization dimension. For quality
// dimensions with a registered conversion the additive form is compared
// (an absent additive value contributes 0, i.e. no loss); otherwise the
// plain value is compared directly with absent treated as 0.
func chooseEdgeKey(snap *network.Snapshot, u, v, dim string, quality bool) int {
	keys := snap.EdgeKeys(u, v)
	if len(keys) <= 1 {
		if len(keys) == 1 {
			return keys[0]
		}
		return 0
	}

	_, hasConv := snap.Conversions[dim]
	bestKey := keys[0]
	bestRank := edgeRank(snap, u, v, keys[0], dim, quality, hasConv)
	for _, k := range keys[1:] {
		if rank := edgeRank(snap, u, v, k, dim, quality, hasConv); rank < bestRank {
			bestKey = k
			bestRank = rank
		}
	}
	return bestKey
}

// edgeRank returns a value to minimize when ranking parallel edges.
func edgeRank(snap *network.Snapshot, u, v string, key int, dim string, quality, hasConv bool) float64 {
	c, err := snap.EdgeCost(u, v, key)
	if err != nil {
		return 0
	}
	switch {
	case quality && hasConv:
		return c[cost.AdditiveName(dim)]
	case quality:
		return -c[dim]
	default:
		return c[dim]
	}
}
