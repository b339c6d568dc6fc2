package reduce

import (
	"github.com/qnetsim/qnetsim/pkg/algorithms"
	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/network"
)

// SwapOptions configures SwapReduce.
type SwapOptions struct {
	// Threshold caps how many paths are swapped; 0 means run until no
	// path remains. Negative values are a validation error.
	Threshold int
}

// SwapReduce reduces the network between head and tail by entanglement
// swapping, starting from the highest-efficiency path.
//
// The algorithm works on an isolated copy: while a path exists, it takes
// the currently best path by efficiency, computes its swapped cost vector
// (efficiency scaled by every valid swap site, fidelity untouched), and
// removes its edges. The outcome carries the working copy with one new
// parallel head-tail edge per swapped path: unlike purification, swapping
// only relays each supply end-to-end, so the swapped paths stay
// independent links and are never fused with each other.
//
// If the very first search finds no path, the NotConnected outcome is
// returned with no error.
func SwapReduce(snap *network.Snapshot, head, tail string, opts SwapOptions) (Outcome, error) {
	if opts.Threshold < 0 {
		return Outcome{}, ErrInvalidThreshold
	}
	if _, err := snap.GetNode(head); err != nil {
		return Outcome{}, err
	}
	if _, err := snap.GetNode(tail); err != nil {
		return Outcome{}, err
	}

	work := snap.Clone()
	var swapped []cost.Vector

	for work.HasPath(head, tail) {
		if thresholdExceeded(len(swapped), opts.Threshold) {
			break
		}
		path, err := algorithms.BestPath(work, head, tail, cost.Efficiency)
		if err != nil {
			return Outcome{}, err
		}
		if path == nil {
			break
		}
		swapped = append(swapped, path.SwapCost())
		if err := path.RemoveEdges(); err != nil {
			return Outcome{}, err
		}
	}

	if len(swapped) == 0 {
		return NotConnected(), nil
	}

	for _, cv := range swapped {
		if _, err := work.AddEdge(head, tail, cv); err != nil {
			return Outcome{}, err
		}
	}
	return Outcome{Network: work, Connected: true, PathsConsumed: len(swapped)}, nil
}
