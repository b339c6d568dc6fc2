package network

import (
	"errors"
	"math"
	"testing"

	"github.com/qnetsim/qnetsim/pkg/cost"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12
}

// buildTriangle creates A-B-C with one extra parallel A-B edge
func buildTriangle(t *testing.T) *Snapshot {
	t.Helper()
	s := NewSnapshot()
	if err := s.AddNodes(NewNode("A", KindPlain), NewNode("B", KindPlain), NewNode("C", KindGround)); err != nil {
		t.Fatalf("AddNodes failed: %v", err)
	}
	mustAddEdge(t, s, "A", "B", cost.Vector{"e": 0.9, "f": 0.9})
	mustAddEdge(t, s, "A", "B", cost.Vector{"e": 0.5, "f": 0.95})
	mustAddEdge(t, s, "B", "C", cost.Vector{"e": 0.8, "f": 0.8})
	mustAddEdge(t, s, "A", "C", cost.Vector{"e": 0.7, "f": 0.7})
	return s
}

func mustAddEdge(t *testing.T, s *Snapshot, u, v string, c cost.Vector) int {
	t.Helper()
	key, err := s.AddEdge(u, v, c)
	if err != nil {
		t.Fatalf("AddEdge(%s, %s) failed: %v", u, v, err)
	}
	return key
}

// TestAddEdge_ParallelKeys verifies key allocation within a pair
func TestAddEdge_ParallelKeys(t *testing.T) {
	s := buildTriangle(t)

	if got := s.EdgeCount("A", "B"); got != 2 {
		t.Errorf("EdgeCount(A, B) = %d, want 2", got)
	}
	keys := s.EdgeKeys("A", "B")
	if len(keys) != 2 || keys[0] != 0 || keys[1] != 1 {
		t.Errorf("EdgeKeys(A, B) = %v, want [0 1]", keys)
	}

	// Reverse direction sees the same edges.
	if got := s.EdgeCount("B", "A"); got != 2 {
		t.Errorf("EdgeCount(B, A) = %d, want 2", got)
	}
}

// TestAddEdge_KeyReuseAfterRemoval verifies the smallest unused key is reallocated
func TestAddEdge_KeyReuseAfterRemoval(t *testing.T) {
	s := buildTriangle(t)

	if err := s.RemoveEdge("A", "B", 0); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	key := mustAddEdge(t, s, "A", "B", cost.Vector{"e": 1, "f": 1})
	if key != 0 {
		t.Errorf("reallocated key = %d, want 0", key)
	}
}

// TestAddEdge_DerivesAdditiveForms verifies add_ halves are filled on insertion
func TestAddEdge_DerivesAdditiveForms(t *testing.T) {
	s := buildTriangle(t)

	c, err := s.EdgeCost("A", "B", 0)
	if err != nil {
		t.Fatalf("EdgeCost failed: %v", err)
	}
	if !almostEqual(c["add_e"], cost.NegLog.Forward(0.9)) {
		t.Errorf("add_e = %v, want %v", c["add_e"], cost.NegLog.Forward(0.9))
	}
	if !almostEqual(c["add_f"], cost.NegLog.Forward(0.9)) {
		t.Errorf("add_f = %v, want %v", c["add_f"], cost.NegLog.Forward(0.9))
	}
}

// TestAddEdge_Errors verifies sentinel errors surface through the chain
func TestAddEdge_Errors(t *testing.T) {
	s := buildTriangle(t)

	if _, err := s.AddEdge("A", "Z", cost.Vector{}); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("AddEdge to missing node: got %v, want ErrNodeNotFound", err)
	}
	if _, err := s.AddEdge("A", "A", cost.Vector{}); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("self-loop: got %v, want ErrSelfLoop", err)
	}
	if err := s.AddEdgeWithKey("A", "B", 0, cost.Vector{}); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("duplicate key: got %v, want ErrDuplicateEdge", err)
	}
}

// TestRemoveNode_DropsIncidentEdges verifies node removal cleans up edges
func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	s := buildTriangle(t)

	if err := s.RemoveNode("B"); err != nil {
		t.Fatalf("RemoveNode failed: %v", err)
	}
	if s.EdgeCount("A", "B") != 0 {
		t.Error("A-B edges survived RemoveNode(B)")
	}
	if got := s.Neighbors("A"); len(got) != 1 || got[0] != "C" {
		t.Errorf("Neighbors(A) = %v, want [C]", got)
	}
	if s.TotalEdges() != 1 {
		t.Errorf("TotalEdges = %d, want 1", s.TotalEdges())
	}
}

// TestHasPath verifies connectivity queries
func TestHasPath(t *testing.T) {
	s := buildTriangle(t)

	if !s.HasPath("A", "C") {
		t.Error("HasPath(A, C) = false, want true")
	}
	if !s.HasPath("A", "A") {
		t.Error("HasPath(A, A) = false, want true")
	}

	// Disconnect C entirely.
	if err := s.RemoveEdge("B", "C", 0); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	if err := s.RemoveEdge("A", "C", 0); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}
	if s.HasPath("A", "C") {
		t.Error("HasPath(A, C) = true after disconnecting C")
	}
	if s.HasPath("A", "Z") {
		t.Error("HasPath to a missing node should be false")
	}
}

// TestClone_Independence verifies deep-copy semantics
func TestClone_Independence(t *testing.T) {
	s := buildTriangle(t)
	c := s.Clone()

	if err := c.RemoveNode("B"); err != nil {
		t.Fatalf("RemoveNode on clone failed: %v", err)
	}
	if !s.HasNode("B") {
		t.Error("mutating the clone removed a node from the original")
	}
	if s.EdgeCount("A", "B") != 2 {
		t.Error("mutating the clone changed the original's edges")
	}

	// Node cost vectors must not alias.
	n, _ := c.GetNode("A")
	n.Costs["e"] = 0.123
	orig, _ := s.GetNode("A")
	if almostEqual(orig.Costs["e"], 0.123) {
		t.Error("node costs alias between clone and original")
	}
}
