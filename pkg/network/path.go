package network

import (
	"strings"

	"github.com/qnetsim/qnetsim/pkg/cost"
)

// Path is an ordered walk through a snapshot: a node sequence plus, for
// each consecutive pair, the parallel-edge key that disambiguates which
// link is traversed.
//
// A Path holds a reference to the snapshot it was built against. Its cost
// vector is computed at construction and is NOT revalidated when the
// snapshot mutates; callers that mutate the graph underneath a live path
// must call Update to recompute it.
type Path struct {
	snap  *Snapshot
	nodes []*Node
	keys  []int
	cv    cost.Vector
}

// NewPath constructs a path over the given node names. keys supplies the
// parallel-edge key for each hop; nil means all-zero keys. Construction
// fails if any consecutive (u, v, key) triple is not an existing edge in
// either direction — a malformed path is a validation error, never a
// silent repair.
func NewPath(snap *Snapshot, names []string, keys []int) (*Path, error) {
	if len(names) == 0 {
		return nil, pathError("NewPath", "", ErrInvalidPath)
	}
	if keys == nil {
		keys = make([]int, len(names)-1)
	}
	if len(keys) != len(names)-1 {
		return nil, pathError("NewPath", strings.Join(names, "-"), ErrInvalidPath)
	}

	nodes := make([]*Node, len(names))
	for i, name := range names {
		n, err := snap.GetNode(name)
		if err != nil {
			return nil, pathError("NewPath", strings.Join(names, "-"), err)
		}
		nodes[i] = n
	}
	for i := 0; i < len(names)-1; i++ {
		if _, err := snap.EdgeCost(names[i], names[i+1], keys[i]); err != nil {
			return nil, pathError("NewPath", strings.Join(names, "-"), err)
		}
	}

	p := &Path{snap: snap, nodes: nodes, keys: keys}
	cv, err := p.computeCostVector()
	if err != nil {
		return nil, err
	}
	p.cv = cv
	return p, nil
}

// Head returns the first node name.
func (p *Path) Head() string { return p.nodes[0].Name }

// Tail returns the last node name.
func (p *Path) Tail() string { return p.nodes[len(p.nodes)-1].Name }

// Len returns the number of nodes in the path.
func (p *Path) Len() int { return len(p.nodes) }

// Names returns the node names in traversal order.
func (p *Path) Names() []string {
	names := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		names[i] = n.Name
	}
	return names
}

// Keys returns the parallel-edge key of each hop.
func (p *Path) Keys() []int {
	keys := make([]int, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Stringify renders the path as "A-B-C" for logs and exports.
func (p *Path) Stringify() string {
	return strings.Join(p.Names(), "-")
}

// CostVector returns the path's cost vector as computed at construction or
// at the last Update. The returned vector is a copy.
func (p *Path) CostVector() cost.Vector {
	return p.cv.Clone()
}

// Update recomputes the cost vector against the current snapshot state.
func (p *Path) Update() error {
	cv, err := p.computeCostVector()
	if err != nil {
		return err
	}
	p.cv = cv
	return nil
}

// computeCostVector aggregates the cost vector of every traversed edge and
// the intrinsic cost vector of every visited node, then resolves additive
// dimensions back to plain values through the snapshot's conversions.
func (p *Path) computeCostVector() (cost.Vector, error) {
	elements := make([]cost.Vector, 0, 2*len(p.nodes)-1)
	for i := 0; i < len(p.nodes)-1; i++ {
		c, err := p.snap.EdgeCost(p.nodes[i].Name, p.nodes[i+1].Name, p.keys[i])
		if err != nil {
			return nil, pathError("CostVector", p.Stringify(), err)
		}
		elements = append(elements, c)
	}
	for _, n := range p.nodes {
		elements = append(elements, n.Costs)
	}
	cv := cost.Aggregate(elements, p.snap.Conversions)
	return cost.ResolveAdditive(cv, p.snap.Conversions), nil
}

// RemoveEdges deletes every edge instance the path traversed from the
// snapshot. The path object itself is left untouched; it is normally
// discarded immediately afterwards.
func (p *Path) RemoveEdges() error {
	for i := 0; i < len(p.nodes)-1; i++ {
		if err := p.snap.RemoveEdge(p.nodes[i].Name, p.nodes[i+1].Name, p.keys[i]); err != nil {
			return pathError("RemoveEdges", p.Stringify(), err)
		}
	}
	return nil
}

// SwapCost returns the path's cost vector after performing entanglement
// swapping at every valid swapper along it.
//
// A swapper is a valid swap site only if a ground station has been seen on
// both sides of it in sequence order. Each valid swap multiplies a running
// success factor by that swapper's SwapProb. The result is the path's own
// cost vector with the efficiency dimension scaled by the accumulated
// factor; fidelity and every other dimension pass through unchanged (the
// swap is modeled as lossy but fidelity-preserving). A path with no valid
// swap site returns the cost vector unchanged (factor 1).
func (p *Path) SwapCost() cost.Vector {
	groundSeen := false
	var pending *Node
	factor := 1.0

	for _, n := range p.nodes {
		if n.IsGround() {
			if !groundSeen {
				groundSeen = true
			} else if pending != nil {
				factor *= pending.SwapProb
				pending = nil
			}
		}
		if n.IsSwapper() && groundSeen {
			pending = n
		}
	}

	cv := p.cv.Clone()
	cv[cost.Efficiency] *= factor
	// Keep the additive form consistent with the scaled plain value.
	if conv, ok := p.snap.Conversions[cost.Efficiency]; ok {
		cv[cost.AdditiveName(cost.Efficiency)] = conv.Forward(cv[cost.Efficiency])
	}
	return cv
}
