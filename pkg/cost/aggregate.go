package cost

// Aggregate combines a list of cost vectors into one.
//
// Every dimension present in any input is summed over the inputs that carry
// it (dimensions missing from some inputs are absent, not zero, during the
// union pass; the running sum starts at 0). Afterwards, every
// additive-marked dimension whose plain counterpart was not supplied by any
// input has the plain value regenerated through the registered inverse
// conversion. Plain counterparts that were supplied are left as their sums;
// callers that need the log-domain resolution applied across the board use
// ResolveAdditive.
//
// Aggregate(nil, conv) and Aggregate([]Vector{}, conv) return an empty
// vector.
func Aggregate(vectors []Vector, conv Conversions) Vector {
	out := make(Vector)
	for _, v := range vectors {
		for name, val := range v {
			out[name] += val
		}
	}
	for name, val := range out {
		if !IsAdditive(name) {
			continue
		}
		plain := PlainName(name)
		if _, ok := out[plain]; ok {
			continue
		}
		if c, ok := conv[plain]; ok {
			out[plain] = c.Inverse(val)
		}
	}
	return out
}

// ResolveAdditive overwrites, for every additive-marked dimension with a
// registered conversion, the plain value with Inverse(additive value). This
// is the final step of path costing: the additive forms accumulate by
// summation and the plain forms are rebuilt once at the end. The vector is
// modified in place and returned.
func ResolveAdditive(v Vector, conv Conversions) Vector {
	for name, val := range v {
		if !IsAdditive(name) {
			continue
		}
		plain := PlainName(name)
		if c, ok := conv[plain]; ok {
			v[plain] = c.Inverse(val)
		}
	}
	return v
}
