package montecarlo

import (
	"math/rand"

	"github.com/qnetsim/qnetsim/pkg/network"
)

// Percolate deep-copies the snapshot, resolves the communication pairs, and
// deletes every node not belonging to any pair independently with the given
// probability. Pair members are never deleted. prob=0 removes nothing and
// prob=1 removes every non-pair node.
//
// Nodes are visited in sorted name order, so for a fixed rng state the same
// snapshot percolates identically.
func Percolate(snap *network.Snapshot, prob float64, selector PairSelector, rng *rand.Rand) (*network.Snapshot, []Pair, error) {
	if prob < 0 || prob > 1 {
		return nil, nil, ErrInvalidProbability
	}
	if selector == nil {
		return nil, nil, ErrNilSelector
	}

	pairs, err := selector(snap)
	if err != nil {
		return nil, nil, err
	}
	if len(pairs) == 0 {
		return nil, nil, ErrNoPairs
	}

	protected := make(map[string]struct{}, 2*len(pairs))
	for _, p := range pairs {
		protected[p.Head] = struct{}{}
		protected[p.Tail] = struct{}{}
	}

	work := snap.Clone()
	for _, name := range work.Nodes() {
		if _, ok := protected[name]; ok {
			continue
		}
		if rng.Float64() < prob {
			if err := work.RemoveNode(name); err != nil {
				return nil, nil, err
			}
		}
	}
	return work, pairs, nil
}
