package topology

import (
	"math"
	"testing"

	"github.com/qnetsim/qnetsim/pkg/reduce"
)

func TestRepeaterChain(t *testing.T) {
	snap, err := RepeaterChain()
	if err != nil {
		t.Fatalf("RepeaterChain failed: %v", err)
	}
	if got := snap.NodeCount(); got != 5 {
		t.Errorf("NodeCount = %d, want 5", got)
	}
	// The A side link is doubled.
	if got := snap.EdgeCount("A", "G1"); got != 2 {
		t.Errorf("EdgeCount(A, G1) = %d, want 2", got)
	}
	if !snap.HasPath("A", "B") {
		t.Error("A and B must be connected")
	}
}

func TestPurifyDemo_TwoDisjointSupplies(t *testing.T) {
	snap, err := PurifyDemo()
	if err != nil {
		t.Fatalf("PurifyDemo failed: %v", err)
	}

	out, err := reduce.PurifyReduce(snap, "A", "B", reduce.PurifyOptions{})
	if err != nil {
		t.Fatalf("PurifyReduce failed: %v", err)
	}
	if !out.Connected {
		t.Fatal("expected a connected outcome")
	}
	if out.PathsConsumed != 2 {
		t.Errorf("PathsConsumed = %d, want 2 disjoint relays", out.PathsConsumed)
	}
}

func TestSwapDemo_LosslessDoubleSwap(t *testing.T) {
	snap, err := SwapDemo()
	if err != nil {
		t.Fatalf("SwapDemo failed: %v", err)
	}

	out, err := reduce.SwapReduce(snap, "A", "B", reduce.SwapOptions{})
	if err != nil {
		t.Fatalf("SwapReduce failed: %v", err)
	}
	cv, err := out.Network.EdgeCost("A", "B", 0)
	if err != nil {
		t.Fatalf("relayed edge missing: %v", err)
	}
	// Lossless links and unit swap probabilities relay perfectly.
	if cv["e"] != 1 || cv["f"] != 1 {
		t.Errorf("relayed cost = %v, want e=1 f=1", cv)
	}
}

func TestDoubleSwap_TwoIndependentRelays(t *testing.T) {
	snap, err := DoubleSwap()
	if err != nil {
		t.Fatalf("DoubleSwap failed: %v", err)
	}

	out, err := reduce.SwapReduce(snap, "A", "B", reduce.SwapOptions{})
	if err != nil {
		t.Fatalf("SwapReduce failed: %v", err)
	}
	if out.PathsConsumed != 2 {
		t.Fatalf("PathsConsumed = %d, want 2", out.PathsConsumed)
	}
	if got := out.Network.EdgeCount("A", "B"); got != 2 {
		t.Fatalf("EdgeCount(A, B) = %d, want 2 relayed links", got)
	}
	cv, err := out.Network.EdgeCost("A", "B", 0)
	if err != nil {
		t.Fatalf("relayed edge missing: %v", err)
	}
	want := math.Pow(0.9, 4)
	if math.Abs(cv["e"]-want) > 1e-9 {
		t.Errorf("relayed e = %v, want %v", cv["e"], want)
	}
	if math.Abs(cv["f"]-want) > 1e-9 {
		t.Errorf("relayed f = %v, want %v", cv["f"], want)
	}
}
