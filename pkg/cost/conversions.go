package cost

import "math"

// Conversion is a forward/inverse pair between a multiplicative dimension
// and its additive log-domain form. The round-trip law
// Inverse(Forward(x)) == x must hold within floating tolerance.
type Conversion struct {
	Forward func(float64) float64
	Inverse func(float64) float64
}

// Conversions registers the conversion pair for each plain dimension name.
type Conversions map[string]Conversion

// NegLog is the standard conversion for probability-like multiplicative
// dimensions: Forward(x) = -ln(x), Inverse(a) = exp(-a). Products in the
// multiplicative domain become sums in the additive domain.
var NegLog = Conversion{
	Forward: func(x float64) float64 { return -math.Log(x) },
	Inverse: func(a float64) float64 { return math.Exp(-a) },
}

// DefaultConversions returns the conversion table used by the standard
// network model: efficiency and fidelity both combine multiplicatively
// along a path.
func DefaultConversions() Conversions {
	return Conversions{
		Efficiency: NegLog,
		Fidelity:   NegLog,
	}
}

// Clone returns an independent copy of the conversion table. The function
// pairs themselves are shared; they are stateless.
func (c Conversions) Clone() Conversions {
	if c == nil {
		return nil
	}
	out := make(Conversions, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Derive fills in the missing half of every dimension pair on v: a plain
// value with no additive form gains add_x = Forward(x), and an additive
// value with no plain form gains x = Inverse(add_x). Dimensions without a
// registered conversion are left untouched. The vector is modified in place
// and returned.
func (c Conversions) Derive(v Vector) Vector {
	for dim, conv := range c {
		add := AdditiveName(dim)
		_, hasPlain := v[dim]
		_, hasAdd := v[add]
		switch {
		case hasPlain && !hasAdd:
			v[add] = conv.Forward(v[dim])
		case hasAdd && !hasPlain:
			v[dim] = conv.Inverse(v[add])
		}
	}
	return v
}
