// Package montecarlo drives randomized percolation trials over a network
// snapshot, applies a graph reduction between a communication pair, scores
// the reduced network, and aggregates the scores across a sweep of failure
// probabilities.
package montecarlo

import (
	"errors"
	"fmt"

	"github.com/qnetsim/qnetsim/pkg/network"
	"github.com/qnetsim/qnetsim/pkg/reduce"
)

var (
	// ErrInvalidProbability is returned for percolation probabilities
	// outside [0, 1].
	ErrInvalidProbability = errors.New("percolation probability must be in [0, 1]")

	// ErrNoPairs is returned when a pair selector resolves no pairs.
	ErrNoPairs = errors.New("pair selector returned no communication pairs")

	// ErrNilSelector is returned when no pair selector is supplied.
	ErrNilSelector = errors.New("pair selector must not be nil")
)

// Pair is a communication pair: two distinguished endpoints that percolation
// must never delete and between which reduction operates.
type Pair struct {
	Head string
	Tail string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s-%s", p.Head, p.Tail)
}

// PairSelector resolves the communication pairs for a trial against the
// snapshot being percolated. Selectors must be safe for concurrent use:
// trials run in parallel.
type PairSelector func(snap *network.Snapshot) ([]Pair, error)

// FixedPair returns a selector that always yields the single given pair.
func FixedPair(head, tail string) PairSelector {
	return FixedPairs(Pair{Head: head, Tail: tail})
}

// FixedPairs returns a selector that always yields the given pairs.
// Reduction uses the first pair; the rest are only protected from
// percolation and scored.
func FixedPairs(pairs ...Pair) PairSelector {
	return func(*network.Snapshot) ([]Pair, error) {
		if len(pairs) == 0 {
			return nil, ErrNoPairs
		}
		out := make([]Pair, len(pairs))
		copy(out, pairs)
		return out, nil
	}
}

// Reduction is a named graph-reduction strategy. The name labels metrics
// and log entries.
type Reduction struct {
	Name  string
	Apply func(snap *network.Snapshot, head, tail string) (reduce.Outcome, error)
}

// PurifyReduction wraps reduce.PurifyReduce with the given options.
func PurifyReduction(opts reduce.PurifyOptions) Reduction {
	return Reduction{
		Name: "purify",
		Apply: func(snap *network.Snapshot, head, tail string) (reduce.Outcome, error) {
			return reduce.PurifyReduce(snap, head, tail, opts)
		},
	}
}

// SwapReduction wraps reduce.SwapReduce with the given options.
func SwapReduction(opts reduce.SwapOptions) Reduction {
	return Reduction{
		Name: "swap",
		Apply: func(snap *network.Snapshot, head, tail string) (reduce.Outcome, error) {
			return reduce.SwapReduce(snap, head, tail, opts)
		},
	}
}

// Sample is the outcome of one Monte Carlo trial.
type Sample struct {
	Outcome reduce.Outcome
	Pairs   []Pair
}
