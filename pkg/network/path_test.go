package network

import (
	"errors"
	"math"
	"testing"

	"github.com/qnetsim/qnetsim/pkg/cost"
)

// buildChain creates A-G1-G2-B with identical link costs and the given
// intermediate node kinds
func buildChain(t *testing.T, mid1, mid2 Kind) *Snapshot {
	t.Helper()
	s := NewSnapshot()
	if err := s.AddNodes(
		NewNode("A", KindPlain),
		NewNode("G1", mid1),
		NewNode("G2", mid2),
		NewNode("B", KindPlain),
	); err != nil {
		t.Fatalf("AddNodes failed: %v", err)
	}
	mustAddEdge(t, s, "A", "G1", cost.Vector{"e": 0.9, "f": 0.9})
	mustAddEdge(t, s, "G1", "G2", cost.Vector{"e": 0.9, "f": 0.9})
	mustAddEdge(t, s, "G2", "B", cost.Vector{"e": 0.9, "f": 0.9})
	return s
}

// TestNewPath_ValidatesEdges verifies construction fails on a missing hop
func TestNewPath_ValidatesEdges(t *testing.T) {
	s := buildChain(t, KindGround, KindGround)

	if _, err := NewPath(s, []string{"A", "G2"}, nil); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("missing hop: got %v, want ErrEdgeNotFound", err)
	}
	if _, err := NewPath(s, []string{"A", "G1"}, []int{3}); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("missing key: got %v, want ErrEdgeNotFound", err)
	}
	if _, err := NewPath(s, []string{"A", "Z"}, nil); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("missing node: got %v, want ErrNodeNotFound", err)
	}
	if _, err := NewPath(s, nil, nil); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("empty sequence: got %v, want ErrInvalidPath", err)
	}
	if _, err := NewPath(s, []string{"A", "G1"}, []int{0, 0}); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("key count mismatch: got %v, want ErrInvalidPath", err)
	}
}

// TestNewPath_SingleNode verifies a length-1 path is legal
func TestNewPath_SingleNode(t *testing.T) {
	s := buildChain(t, KindGround, KindGround)

	p, err := NewPath(s, []string{"A"}, nil)
	if err != nil {
		t.Fatalf("NewPath([A]) failed: %v", err)
	}
	if p.Head() != "A" || p.Tail() != "A" || p.Len() != 1 {
		t.Errorf("single-node path malformed: head=%s tail=%s len=%d", p.Head(), p.Tail(), p.Len())
	}
}

// TestPath_CostVector verifies multiplicative combination across hops
func TestPath_CostVector(t *testing.T) {
	s := buildChain(t, KindGround, KindGround)

	p, err := NewPath(s, []string{"A", "G1", "G2", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	cv := p.CostVector()

	want := 0.9 * 0.9 * 0.9
	if math.Abs(cv["e"]-want) > 1e-9 {
		t.Errorf("e = %v, want %v", cv["e"], want)
	}
	if math.Abs(cv["f"]-want) > 1e-9 {
		t.Errorf("f = %v, want %v", cv["f"], want)
	}
}

// TestPath_UpdateAfterMutation verifies the cost vector is recomputed only on demand
func TestPath_UpdateAfterMutation(t *testing.T) {
	s := NewSnapshot()
	if err := s.AddNodes(NewNode("A", KindPlain), NewNode("B", KindPlain)); err != nil {
		t.Fatalf("AddNodes failed: %v", err)
	}
	mustAddEdge(t, s, "A", "B", cost.Vector{"e": 0.9, "f": 0.9})

	p, err := NewPath(s, []string{"A", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	before := p.CostVector()["e"]

	// Mutate the underlying edge; the stored vector must be stale until Update.
	if err := s.RemoveEdge("A", "B", 0); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	mustAddEdge(t, s, "A", "B", cost.Vector{"e": 0.5, "f": 0.9})

	if got := p.CostVector()["e"]; got != before {
		t.Errorf("cost vector changed without Update: %v", got)
	}
	if err := p.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := p.CostVector()["e"]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("updated e = %v, want 0.5", got)
	}
}

// TestPath_RemoveEdges verifies every traversed edge instance is deleted
func TestPath_RemoveEdges(t *testing.T) {
	s := buildChain(t, KindGround, KindGround)
	mustAddEdge(t, s, "A", "G1", cost.Vector{"e": 0.5, "f": 0.5}) // parallel edge, key 1

	p, err := NewPath(s, []string{"A", "G1", "G2", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	if err := p.RemoveEdges(); err != nil {
		t.Fatalf("RemoveEdges failed: %v", err)
	}

	// The traversed key-0 edges are gone; the parallel key-1 edge survives.
	if s.EdgeCount("A", "G1") != 1 {
		t.Errorf("EdgeCount(A, G1) = %d, want 1", s.EdgeCount("A", "G1"))
	}
	if s.EdgeCount("G1", "G2") != 0 || s.EdgeCount("G2", "B") != 0 {
		t.Error("traversed edges survived RemoveEdges")
	}
}

// TestPath_Stringify verifies the human-readable rendering
func TestPath_Stringify(t *testing.T) {
	s := buildChain(t, KindGround, KindGround)
	p, err := NewPath(s, []string{"A", "G1", "G2", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	if got := p.Stringify(); got != "A-G1-G2-B" {
		t.Errorf("Stringify = %q, want %q", got, "A-G1-G2-B")
	}
}

// TestSwapCost_NoSwapper verifies a ground-only path is untouched (factor 1)
func TestSwapCost_NoSwapper(t *testing.T) {
	s := buildChain(t, KindGround, KindGround)

	p, err := NewPath(s, []string{"A", "G1", "G2", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	cv := p.SwapCost()

	want := 0.9 * 0.9 * 0.9
	if math.Abs(cv["e"]-want) > 1e-9 {
		t.Errorf("e = %v, want %v (no valid swap site, multiplier 1)", cv["e"], want)
	}
	if math.Abs(cv["f"]-want) > 1e-9 {
		t.Errorf("f = %v, want %v (fidelity passes through)", cv["f"], want)
	}
}

// TestSwapCost_ValidSwapper verifies a ground-swapper-ground pattern applies SwapProb
func TestSwapCost_ValidSwapper(t *testing.T) {
	s := NewSnapshot()
	swapper := NewNode("T", KindSwapper)
	swapper.SwapProb = 0.6
	if err := s.AddNodes(
		NewNode("A", KindPlain),
		NewNode("G1", KindGround),
		swapper,
		NewNode("G2", KindGround),
		NewNode("B", KindPlain),
	); err != nil {
		t.Fatalf("AddNodes failed: %v", err)
	}
	for _, hop := range [][2]string{{"A", "G1"}, {"G1", "T"}, {"T", "G2"}, {"G2", "B"}} {
		mustAddEdge(t, s, hop[0], hop[1], cost.Vector{"e": 1, "f": 1})
	}

	p, err := NewPath(s, []string{"A", "G1", "T", "G2", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	cv := p.SwapCost()
	if math.Abs(cv["e"]-0.6) > 1e-9 {
		t.Errorf("e = %v, want 0.6 (one valid swap)", cv["e"])
	}
	if math.Abs(cv["f"]-1) > 1e-9 {
		t.Errorf("f = %v, want 1", cv["f"])
	}
	// The additive form tracks the scaled plain value.
	if math.Abs(cv["add_e"]-cost.NegLog.Forward(0.6)) > 1e-9 {
		t.Errorf("add_e = %v, want %v", cv["add_e"], cost.NegLog.Forward(0.6))
	}
}

// TestSwapCost_SwapperWithoutTrailingGround verifies a swapper needs ground on both sides
func TestSwapCost_SwapperWithoutTrailingGround(t *testing.T) {
	s := NewSnapshot()
	swapper := NewNode("T", KindSwapper)
	swapper.SwapProb = 0.3
	if err := s.AddNodes(
		NewNode("A", KindPlain),
		NewNode("G1", KindGround),
		swapper,
		NewNode("B", KindPlain),
	); err != nil {
		t.Fatalf("AddNodes failed: %v", err)
	}
	for _, hop := range [][2]string{{"A", "G1"}, {"G1", "T"}, {"T", "B"}} {
		mustAddEdge(t, s, hop[0], hop[1], cost.Vector{"e": 1, "f": 1})
	}

	p, err := NewPath(s, []string{"A", "G1", "T", "B"}, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	cv := p.SwapCost()
	if math.Abs(cv["e"]-1) > 1e-9 {
		t.Errorf("e = %v, want 1 (no ground after the swapper)", cv["e"])
	}
}

// TestSwapCost_TwoSwappers verifies the semicircle G-T-G-T-G chain counts both swap sites
func TestSwapCost_TwoSwappers(t *testing.T) {
	s := NewSnapshot()
	t1 := NewNode("T1", KindSwapper)
	t1.SwapProb = 0.5
	t2 := NewNode("T2", KindSwapper)
	t2.SwapProb = 0.5
	if err := s.AddNodes(
		NewNode("A", KindPlain),
		NewNode("G1", KindGround),
		t1,
		NewNode("G2", KindGround),
		t2,
		NewNode("G3", KindGround),
		NewNode("B", KindPlain),
	); err != nil {
		t.Fatalf("AddNodes failed: %v", err)
	}
	seq := []string{"A", "G1", "T1", "G2", "T2", "G3", "B"}
	for i := 0; i < len(seq)-1; i++ {
		mustAddEdge(t, s, seq[i], seq[i+1], cost.Vector{"e": 1, "f": 1})
	}

	p, err := NewPath(s, seq, nil)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	cv := p.SwapCost()
	if math.Abs(cv["e"]-0.25) > 1e-9 {
		t.Errorf("e = %v, want 0.25 (two valid swaps at 0.5 each)", cv["e"])
	}
}
