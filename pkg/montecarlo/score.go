package montecarlo

import (
	"github.com/qnetsim/qnetsim/pkg/algorithms"
	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/network"
	"github.com/qnetsim/qnetsim/pkg/reduce"
)

// PairScorer evaluates one communication pair on a reduced network. A nil
// vector with nil error means the pair is unreachable and takes the floor
// score.
type PairScorer func(snap *network.Snapshot, p Pair) (cost.Vector, error)

// FloorScore is the fixed worst-case score for a disconnected outcome:
// no usable entanglement, fidelity pinned at the classical bound. It is a
// floor value, not a physical measurement.
func FloorScore() cost.Vector {
	return cost.Vector{cost.Efficiency: 0, cost.Fidelity: 0.5}
}

// BestPathScore scores a pair by its best path by fidelity, with the
// additive bookkeeping dimensions stripped from the cost vector.
func BestPathScore(snap *network.Snapshot, p Pair) (cost.Vector, error) {
	path, err := algorithms.BestPath(snap, p.Head, p.Tail, cost.Fidelity)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, nil
	}
	return path.CostVector().StripAdditive(), nil
}

// Score reduces a trial outcome to a single cost vector. A NotConnected
// outcome scores the floor vector. Otherwise every pair is scored (nil
// scorer selects BestPathScore, an unreachable pair contributes the floor)
// and the per-dimension mean across pairs is returned; a dimension absent
// from some pair vectors is averaged over the vectors that carry it.
func Score(out reduce.Outcome, pairs []Pair, scorer PairScorer) (cost.Vector, error) {
	if !out.Connected {
		return FloorScore(), nil
	}
	if scorer == nil {
		scorer = BestPathScore
	}

	vectors := make([]cost.Vector, 0, len(pairs))
	for _, p := range pairs {
		cv, err := scorer(out.Network, p)
		if err != nil {
			return nil, err
		}
		if cv == nil {
			cv = FloorScore()
		}
		vectors = append(vectors, cv)
	}
	return meanVectors(vectors), nil
}

// meanVectors averages per dimension over the vectors that carry it.
func meanVectors(vectors []cost.Vector) cost.Vector {
	sums := cost.Vector{}
	counts := map[string]int{}
	for _, cv := range vectors {
		for name, val := range cv {
			sums[name] += val
			counts[name]++
		}
	}
	mean := cost.Vector{}
	for name, sum := range sums {
		mean[name] = sum / float64(counts[name])
	}
	return mean
}
