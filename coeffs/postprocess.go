package coeffs

import (
	"math"
)

// Rule is the fixed transformation applied to the coefficients
// accepted by the fit before they are emitted.
type Rule struct {
	// DropConstant removes the coefficient of degree 0, which is zero by construction.
	DropConstant bool
	// ArgumentScale converts coefficients fitted for the argument u = s*x into
	// coefficients for x: the term of power k is multiplied by s^k.
	// A zero value leaves the coefficients unscaled.
	ArgumentScale float64
	// OddPowers states that the i-th coefficient multiplies x^(2i+1).
	OddPowers bool
}

// Apply returns the transformed copy of c.
func (r Rule) Apply(c []float64) (out []float64) {

	if r.DropConstant {
		if len(c) == 0 {
			panic("cannot Apply: no constant coefficient to drop")
		}
		c = c[1:]
	}

	out = make([]float64, len(c))
	copy(out, c)

	if r.ArgumentScale == 0 || r.ArgumentScale == 1 {
		return
	}

	for i := range out {
		power := i
		if r.OddPowers {
			power = 2*i + 1
		} else if r.DropConstant {
			power = i + 1
		}
		out[i] *= math.Pow(r.ArgumentScale, float64(power))
	}

	return
}
