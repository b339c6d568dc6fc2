package cost

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCostProperties uses property-based testing to verify the laws the
// cost model relies on. These properties should hold for any value in the
// physically meaningful range.
func TestCostProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property 1: conversion round-trip law Inverse(Forward(x)) == x
	properties.Property("neg-log conversion round-trips", prop.ForAll(
		func(x float64) bool {
			back := NegLog.Inverse(NegLog.Forward(x))
			return math.Abs(back-x) < 1e-9
		},
		gen.Float64Range(1e-6, 1),
	))

	// Property 2: additive forms turn products into sums
	properties.Property("products become sums in the additive domain", prop.ForAll(
		func(x, y float64) bool {
			sum := NegLog.Forward(x) + NegLog.Forward(y)
			return math.Abs(NegLog.Inverse(sum)-x*y) < 1e-9
		},
		gen.Float64Range(1e-3, 1),
		gen.Float64Range(1e-3, 1),
	))

	// Property 3: aggregation of derived vectors resolves to the product
	properties.Property("aggregate then resolve multiplies efficiencies", prop.ForAll(
		func(es []float64) bool {
			conv := DefaultConversions()
			vectors := make([]Vector, len(es))
			product := 1.0
			for i, e := range es {
				vectors[i] = conv.Derive(Vector{Efficiency: e})
				product *= e
			}
			out := ResolveAdditive(Aggregate(vectors, conv), conv)
			if len(es) == 0 {
				return len(out) == 0
			}
			return math.Abs(out[Efficiency]-product) < 1e-9
		},
		gen.SliceOf(gen.Float64Range(1e-2, 1)),
	))

	// Property 4: purification of two supplies above 1/2 never loses fidelity
	properties.Property("purification gains fidelity above one half", prop.ForAll(
		func(f1, f2 float64) bool {
			out := PurifyFidelity(f1, f2)
			return out >= math.Min(f1, f2)-1e-12 && out <= 1+1e-12
		},
		gen.Float64Range(0.5, 1),
		gen.Float64Range(0.5, 1),
	))

	properties.TestingRun(t)
}
