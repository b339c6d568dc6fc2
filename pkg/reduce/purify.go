package reduce

import (
	"github.com/qnetsim/qnetsim/pkg/algorithms"
	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/network"
)

// PurifyOptions configures PurifyReduce.
type PurifyOptions struct {
	// Threshold caps how many paths are purified together; 0 means run
	// until no path remains. Negative values are a validation error.
	Threshold int

	// MeasureProb is the success probability of a single projective
	// measurement; 0 selects cost.DefaultMeasureProb.
	MeasureProb float64
}

// PurifyReduce reduces the network between head and tail by purifying
// paths together, starting from the highest-fidelity path.
//
// The algorithm works on an isolated copy: while a path exists (and the
// threshold, if set, has not been exceeded), it extracts the currently
// best path by fidelity, records its cost vector, and removes its edges
// from the working copy. The best path is re-queried against the mutating
// copy on every iteration; extraction order is best-first at time of
// removal, which is the order the purification transform is folded in.
// Do not pre-sort the recorded fidelities — the graph changes between
// extractions and the fold is order-sensitive.
//
// The returned outcome carries a fresh copy of the ORIGINAL snapshot with
// exactly one synthesized head-tail edge holding the combined cost vector.
// If the very first search finds no path, the NotConnected outcome is
// returned with no error.
func PurifyReduce(snap *network.Snapshot, head, tail string, opts PurifyOptions) (Outcome, error) {
	if opts.Threshold < 0 {
		return Outcome{}, ErrInvalidThreshold
	}
	measureProb := opts.MeasureProb
	if measureProb == 0 {
		measureProb = cost.DefaultMeasureProb
	}
	if _, err := snap.GetNode(head); err != nil {
		return Outcome{}, err
	}
	if _, err := snap.GetNode(tail); err != nil {
		return Outcome{}, err
	}

	work := snap.Clone()
	var extracted []cost.Vector

	for work.HasPath(head, tail) {
		if thresholdExceeded(len(extracted), opts.Threshold) {
			break
		}
		path, err := algorithms.BestPath(work, head, tail, cost.Fidelity)
		if err != nil {
			return Outcome{}, err
		}
		if path == nil {
			break
		}
		extracted = append(extracted, path.CostVector())
		if err := path.RemoveEdges(); err != nil {
			return Outcome{}, err
		}
	}

	if len(extracted) == 0 {
		return NotConnected(), nil
	}

	combined := combinePurified(extracted, measureProb, snap.Conversions)

	reduced := snap.Clone()
	if _, err := reduced.AddEdge(head, tail, combined); err != nil {
		return Outcome{}, err
	}
	return Outcome{Network: reduced, Connected: true, PathsConsumed: len(extracted)}, nil
}

// combinePurified fuses the extracted per-path cost vectors into the cost
// vector of the single synthesized link.
func combinePurified(extracted []cost.Vector, measureProb float64, conv cost.Conversions) cost.Vector {
	combined := cost.Vector{}

	// Fidelity: fold the purification transform in extraction order.
	fs := make([]float64, len(extracted))
	for i, cv := range extracted {
		fs[i] = cv[cost.Fidelity]
	}
	f := cost.CombineFidelities(fs)
	combined[cost.Fidelity] = f
	if c, ok := conv[cost.Fidelity]; ok {
		combined[cost.AdditiveName(cost.Fidelity)] = c.Forward(f)
	}

	// Efficiency: weakest link with the measurement penalty for k paths.
	es := make([]float64, len(extracted))
	for i, cv := range extracted {
		es[i] = cv[cost.Efficiency]
	}
	e := cost.PurifiedEfficiency(es, measureProb)
	combined[cost.Efficiency] = e
	if c, ok := conv[cost.Efficiency]; ok {
		combined[cost.AdditiveName(cost.Efficiency)] = c.Forward(e)
	}

	// Every other dimension contributes additively: sum the additive forms
	// and regenerate the plain forms through the registered conversion.
	sum := cost.Aggregate(extracted, nil)
	for name, val := range sum {
		if !cost.IsAdditive(name) {
			continue
		}
		if _, ok := combined[name]; ok {
			continue
		}
		combined[name] = val
		plain := cost.PlainName(name)
		if c, ok := conv[plain]; ok {
			combined[plain] = c.Inverse(val)
		}
	}
	return combined
}
