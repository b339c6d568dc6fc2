package network

import (
	"sort"

	"github.com/qnetsim/qnetsim/pkg/cost"
)

// pairKey identifies an unordered node pair. U is always the
// lexicographically smaller name.
type pairKey struct {
	U, V string
}

func newPairKey(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}
	return pairKey{U: u, V: v}
}

// Snapshot is an undirected multigraph of stations and entanglement links.
//
// Parallel edges between the same node pair are legal and are distinguished
// by an integer key unique within that pair. The snapshot carries the
// template cost vector (the dimensions the network models) and the
// conversion table used to resolve additive cost forms.
//
// Snapshots are not safe for concurrent mutation; the simulation engine
// gives each trial an exclusively owned Clone instead of sharing one.
type Snapshot struct {
	// Template is the cost vector the network is modeled over. Sweep
	// result columns are fixed from its plain dimensions.
	Template cost.Vector

	// Conversions maps each plain dimension to its additive conversion pair.
	Conversions cost.Conversions

	nodes     map[string]*Node
	edges     map[pairKey]map[int]cost.Vector
	neighbors map[string]map[string]bool
}

// NewSnapshot creates an empty snapshot with the standard efficiency and
// fidelity template and the default conversion table.
func NewSnapshot() *Snapshot {
	return NewSnapshotWith(cost.Vector{cost.Efficiency: 1, cost.Fidelity: 1}, cost.DefaultConversions())
}

// NewSnapshotWith creates an empty snapshot with an explicit template cost
// vector and conversion table.
func NewSnapshotWith(template cost.Vector, conv cost.Conversions) *Snapshot {
	return &Snapshot{
		Template:    template.Clone(),
		Conversions: conv.Clone(),
		nodes:       make(map[string]*Node),
		edges:       make(map[pairKey]map[int]cost.Vector),
		neighbors:   make(map[string]map[string]bool),
	}
}

// AddNode inserts a node. The node's intrinsic cost vector gains the
// missing half of every registered dimension pair (add_x from x or x from
// add_x).
func (s *Snapshot) AddNode(n *Node) error {
	if n == nil || n.Name == "" {
		return nodeError("AddNode", "", ErrEmptyName)
	}
	if _, ok := s.nodes[n.Name]; ok {
		return nodeError("AddNode", n.Name, ErrDuplicateNode)
	}
	if n.Costs == nil {
		n.Costs = cost.Vector{}
	}
	s.Conversions.Derive(n.Costs)
	s.nodes[n.Name] = n
	s.neighbors[n.Name] = make(map[string]bool)
	return nil
}

// AddNodes inserts every node, stopping at the first failure.
func (s *Snapshot) AddNodes(nodes ...*Node) error {
	for _, n := range nodes {
		if err := s.AddNode(n); err != nil {
			return err
		}
	}
	return nil
}

// GetNode looks a node up by name.
func (s *Snapshot) GetNode(name string) (*Node, error) {
	n, ok := s.nodes[name]
	if !ok {
		return nil, nodeError("GetNode", name, ErrNodeNotFound)
	}
	return n, nil
}

// HasNode reports whether a node with the given name exists.
func (s *Snapshot) HasNode(name string) bool {
	_, ok := s.nodes[name]
	return ok
}

// RemoveNode deletes a node and every edge incident to it.
func (s *Snapshot) RemoveNode(name string) error {
	if _, ok := s.nodes[name]; !ok {
		return nodeError("RemoveNode", name, ErrNodeNotFound)
	}
	for nbr := range s.neighbors[name] {
		delete(s.edges, newPairKey(name, nbr))
		delete(s.neighbors[nbr], name)
	}
	delete(s.neighbors, name)
	delete(s.nodes, name)
	return nil
}

// AddEdge inserts a link between u and v with the given cost vector and
// returns the allocated parallel-edge key (the smallest unused key for the
// pair). Missing halves of registered dimension pairs are derived.
func (s *Snapshot) AddEdge(u, v string, costs cost.Vector) (int, error) {
	key := 0
	if bucket, ok := s.edges[newPairKey(u, v)]; ok {
		for {
			if _, used := bucket[key]; !used {
				break
			}
			key++
		}
	}
	if err := s.AddEdgeWithKey(u, v, key, costs); err != nil {
		return 0, err
	}
	return key, nil
}

// AddEdgeWithKey inserts a link under an explicit parallel-edge key.
func (s *Snapshot) AddEdgeWithKey(u, v string, key int, costs cost.Vector) error {
	if u == v {
		return edgeError("AddEdge", u, v, key, ErrSelfLoop)
	}
	if !s.HasNode(u) {
		return nodeError("AddEdge", u, ErrNodeNotFound)
	}
	if !s.HasNode(v) {
		return nodeError("AddEdge", v, ErrNodeNotFound)
	}
	pk := newPairKey(u, v)
	bucket, ok := s.edges[pk]
	if !ok {
		bucket = make(map[int]cost.Vector)
		s.edges[pk] = bucket
	}
	if _, used := bucket[key]; used {
		return edgeError("AddEdge", u, v, key, ErrDuplicateEdge)
	}
	bucket[key] = s.Conversions.Derive(costs.Clone())
	s.neighbors[u][v] = true
	s.neighbors[v][u] = true
	return nil
}

// EdgeCost returns the cost vector of the edge (u, v, key), looked up in
// either direction. The returned vector is owned by the snapshot; callers
// must not modify it.
func (s *Snapshot) EdgeCost(u, v string, key int) (cost.Vector, error) {
	bucket, ok := s.edges[newPairKey(u, v)]
	if !ok {
		return nil, edgeError("EdgeCost", u, v, key, ErrEdgeNotFound)
	}
	c, ok := bucket[key]
	if !ok {
		return nil, edgeError("EdgeCost", u, v, key, ErrEdgeNotFound)
	}
	return c, nil
}

// EdgeKeys returns the parallel-edge keys between u and v in sorted order.
func (s *Snapshot) EdgeKeys(u, v string) []int {
	bucket := s.edges[newPairKey(u, v)]
	keys := make([]int, 0, len(bucket))
	for k := range bucket {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// EdgeCount returns the number of parallel edges between u and v.
func (s *Snapshot) EdgeCount(u, v string) int {
	return len(s.edges[newPairKey(u, v)])
}

// RemoveEdge deletes the edge instance (u, v, key).
func (s *Snapshot) RemoveEdge(u, v string, key int) error {
	pk := newPairKey(u, v)
	bucket, ok := s.edges[pk]
	if !ok {
		return edgeError("RemoveEdge", u, v, key, ErrEdgeNotFound)
	}
	if _, ok := bucket[key]; !ok {
		return edgeError("RemoveEdge", u, v, key, ErrEdgeNotFound)
	}
	delete(bucket, key)
	if len(bucket) == 0 {
		delete(s.edges, pk)
		delete(s.neighbors[u], v)
		delete(s.neighbors[v], u)
	}
	return nil
}

// Neighbors returns the names of nodes adjacent to name, sorted for
// deterministic traversal order.
func (s *Snapshot) Neighbors(name string) []string {
	nbrs := make([]string, 0, len(s.neighbors[name]))
	for n := range s.neighbors[name] {
		nbrs = append(nbrs, n)
	}
	sort.Strings(nbrs)
	return nbrs
}

// Nodes returns every node name in sorted order.
func (s *Snapshot) Nodes() []string {
	names := make([]string, 0, len(s.nodes))
	for n := range s.nodes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NodeCount returns the number of nodes.
func (s *Snapshot) NodeCount() int { return len(s.nodes) }

// TotalEdges returns the number of edge instances, parallel edges counted
// individually.
func (s *Snapshot) TotalEdges() int {
	total := 0
	for _, bucket := range s.edges {
		total += len(bucket)
	}
	return total
}

// HasPath reports whether any path connects u and v, via breadth-first
// search. Missing endpoints yield false.
func (s *Snapshot) HasPath(u, v string) bool {
	if !s.HasNode(u) || !s.HasNode(v) {
		return false
	}
	if u == v {
		return true
	}
	visited := map[string]bool{u: true}
	queue := []string{u}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for nbr := range s.neighbors[current] {
			if nbr == v {
				return true
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return false
}

// Clone returns a fully independent deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Template:    s.Template.Clone(),
		Conversions: s.Conversions.Clone(),
		nodes:       make(map[string]*Node, len(s.nodes)),
		edges:       make(map[pairKey]map[int]cost.Vector, len(s.edges)),
		neighbors:   make(map[string]map[string]bool, len(s.neighbors)),
	}
	for name, n := range s.nodes {
		out.nodes[name] = n.Clone()
	}
	for pk, bucket := range s.edges {
		copied := make(map[int]cost.Vector, len(bucket))
		for k, c := range bucket {
			copied[k] = c.Clone()
		}
		out.edges[pk] = copied
	}
	for name, nbrs := range s.neighbors {
		copied := make(map[string]bool, len(nbrs))
		for n := range nbrs {
			copied[n] = true
		}
		out.neighbors[name] = copied
	}
	return out
}
