package cost

// DefaultMeasureProb is the success probability assumed for a single
// projective Bell measurement during purification.
const DefaultMeasureProb = 0.5

// PurifyFidelity is the binary purification transform: combining two
// entangled supplies of fidelity f1 and f2 yields one supply of fidelity
//
//	f1*f2 / (f1*f2 + (1-f1)*(1-f2))
//
// PurifyFidelity(1, 1) == 1 and PurifyFidelity(f, f) > f for f > 0.5.
func PurifyFidelity(f1, f2 float64) float64 {
	num := f1 * f2
	return num / (num + (1-f1)*(1-f2))
}

// CombineFidelities folds PurifyFidelity left-to-right over fs.
//
// The input order is numerically significant: purification is not invariant
// under reordering in floating point, and callers supply fidelities in
// decreasing order of path quality at time of extraction. Never re-sort.
//
// A single fidelity is returned unchanged; an empty input returns 0 and the
// caller is expected to have ruled that case out.
func CombineFidelities(fs []float64) float64 {
	if len(fs) == 0 {
		return 0
	}
	f := fs[0]
	for _, next := range fs[1:] {
		f = PurifyFidelity(f, next)
	}
	return f
}

// PurifiedEfficiency is the efficiency of purifying k = len(es) paths
// together: the weakest per-path efficiency multiplied by
// measureProb^(2*(k-1)), since combining k supplies requires 2*(k-1)
// projective measurements. k == 1 incurs no penalty. An empty input
// returns 0.
func PurifiedEfficiency(es []float64, measureProb float64) float64 {
	if len(es) == 0 {
		return 0
	}
	min := es[0]
	for _, e := range es[1:] {
		if e < min {
			min = e
		}
	}
	penalty := 1.0
	for i := 0; i < 2*(len(es)-1); i++ {
		penalty *= measureProb
	}
	return min * penalty
}
