package montecarlo

import (
	"math/rand"

	"github.com/qnetsim/qnetsim/pkg/network"
	"github.com/qnetsim/qnetsim/pkg/reduce"
)

// ReduceOnce runs a single trial: percolate the snapshot, fail fast with
// the NotConnected sentinel if ANY selected pair lost its path, otherwise
// reduce between the FIRST pair. Only single-pair reduction is supported;
// extra pairs are protected from percolation and checked for connectivity.
func ReduceOnce(snap *network.Snapshot, selector PairSelector, prob float64, red Reduction, rng *rand.Rand) (reduce.Outcome, []Pair, error) {
	work, pairs, err := Percolate(snap, prob, selector, rng)
	if err != nil {
		return reduce.Outcome{}, nil, err
	}

	for _, p := range pairs {
		if !work.HasPath(p.Head, p.Tail) {
			return reduce.NotConnected(), pairs, nil
		}
	}

	out, err := red.Apply(work, pairs[0].Head, pairs[0].Tail)
	if err != nil {
		return reduce.Outcome{}, nil, err
	}
	return out, pairs, nil
}
