package topology

import (
	"github.com/qnetsim/qnetsim/pkg/cost"
	"github.com/qnetsim/qnetsim/pkg/network"
)

// RepeaterChain builds the five-node repeater benchmark: A and B joined
// through two Ground relays around a central Swapper, with the A side
// carrying a doubled link.
//
//	A ==G1--T--G2--B
func RepeaterChain() (*network.Snapshot, error) {
	b := newBuilder()
	b.addNode(network.NewNode("A", network.KindPlain))
	b.addNode(network.NewNode("B", network.KindPlain))
	b.addNode(network.NewNode("G1", network.KindGround))
	b.addNode(network.NewNode("G2", network.KindGround))
	b.addNode(network.NewNode("T", network.KindSwapper))

	cv := cost.Vector{cost.Efficiency: 0.9, cost.Fidelity: 0.9}
	b.addEdge("A", "G1", cv)
	b.addEdge("A", "G1", cv)
	b.addEdge("G1", "T", cv)
	b.addEdge("T", "G2", cv)
	b.addEdge("G2", "B", cv)
	return b.result()
}

// PurifyDemo builds the tripartite purification benchmark: A and B joined
// by two disjoint Ground relays with fidelity-0.7 links, so purification
// has two independent supplies to fuse.
func PurifyDemo() (*network.Snapshot, error) {
	b := newBuilder()
	b.addNode(network.NewNode("A", network.KindPlain))
	b.addNode(network.NewNode("B", network.KindPlain))
	b.addNode(network.NewNode("G1", network.KindGround))
	b.addNode(network.NewNode("G2", network.KindGround))

	cv := cost.Vector{cost.Efficiency: 1, cost.Fidelity: 0.7}
	b.addEdge("A", "G1", cv)
	b.addEdge("A", "G2", cv)
	b.addEdge("B", "G1", cv)
	b.addEdge("B", "G2", cv)
	return b.result()
}

// SwapDemo builds the semicircle swapping benchmark: a single chain with
// two Swapper sites between Ground anchors and lossless links, so the
// swapped cost isolates the swap probabilities.
func SwapDemo() (*network.Snapshot, error) {
	b := newBuilder()
	b.addNode(network.NewNode("A", network.KindPlain))
	b.addNode(network.NewNode("G1", network.KindGround))
	b.addNode(network.NewNode("T1", network.KindSwapper))
	b.addNode(network.NewNode("G2", network.KindGround))
	b.addNode(network.NewNode("T2", network.KindSwapper))
	b.addNode(network.NewNode("G3", network.KindGround))
	b.addNode(network.NewNode("B", network.KindPlain))

	cv := cost.Vector{cost.Efficiency: 1, cost.Fidelity: 1}
	b.addEdge("A", "G1", cv)
	b.addEdge("G1", "T1", cv)
	b.addEdge("T1", "G2", cv)
	b.addEdge("G2", "T2", cv)
	b.addEdge("T2", "G3", cv)
	b.addEdge("G3", "B", cv)
	return b.result()
}

// DoubleSwap builds the two-route swapping benchmark: A and B joined by
// two disjoint Ground-Swapper-Ground relays with uniform 0.9 links.
func DoubleSwap() (*network.Snapshot, error) {
	b := newBuilder()
	b.addNode(network.NewNode("A", network.KindPlain))
	b.addNode(network.NewNode("B", network.KindPlain))
	b.addNode(network.NewNode("G1", network.KindGround))
	b.addNode(network.NewNode("G2", network.KindGround))
	b.addNode(network.NewNode("T1", network.KindSwapper))
	b.addNode(network.NewNode("G3", network.KindGround))
	b.addNode(network.NewNode("G4", network.KindGround))
	b.addNode(network.NewNode("T2", network.KindSwapper))

	cv := cost.Vector{cost.Efficiency: 0.9, cost.Fidelity: 0.9}
	b.addEdge("A", "G1", cv)
	b.addEdge("G1", "T1", cv)
	b.addEdge("T1", "G2", cv)
	b.addEdge("G2", "B", cv)
	b.addEdge("A", "G3", cv)
	b.addEdge("G3", "T2", cv)
	b.addEdge("T2", "G4", cv)
	b.addEdge("G4", "B", cv)
	return b.result()
}
