// Package cost implements the multi-dimensional cost model attached to
// nodes, edges, and paths of an entanglement-distribution network.
//
// A cost vector maps dimension names (e.g. "e" for efficiency, "f" for
// fidelity) to values. Multiplicative dimensions optionally carry a paired
// log-domain counterpart under the additive-marker prefix "add_", so that
// path aggregation can use plain summation and convert back once at the end.
package cost

import "sort"

// AdditivePrefix marks the log-domain counterpart of a multiplicative
// dimension: "add_e" is the additive form of "e".
const AdditivePrefix = "add_"

// Standard dimension names.
const (
	Efficiency = "e"
	Fidelity   = "f"
)

// Vector is a cost vector: dimension name to value.
type Vector map[string]float64

// IsAdditive reports whether the dimension name carries the additive marker.
func IsAdditive(name string) bool {
	return len(name) >= len(AdditivePrefix) && name[:len(AdditivePrefix)] == AdditivePrefix
}

// AdditiveName returns the additive-marked counterpart of a plain dimension.
func AdditiveName(dim string) string {
	return AdditivePrefix + dim
}

// PlainName strips the additive marker from an additive-marked dimension.
// Names without the marker are returned unchanged.
func PlainName(name string) string {
	if IsAdditive(name) {
		return name[len(AdditivePrefix):]
	}
	return name
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// StripAdditive returns a copy of the vector without additive-marked
// dimensions. Measurement consumers report plain values only.
func (v Vector) StripAdditive() Vector {
	out := make(Vector, len(v))
	for k, val := range v {
		if !IsAdditive(k) {
			out[k] = val
		}
	}
	return out
}

// Dimensions returns the dimension names in sorted order.
func (v Vector) Dimensions() []string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PlainDimensions returns the non-additive dimension names in sorted order.
func (v Vector) PlainDimensions() []string {
	names := make([]string, 0, len(v))
	for k := range v {
		if !IsAdditive(k) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
