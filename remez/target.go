package remez

import (
	"errors"

	"github.com/ufxr/minimax/utils"
)

// Target describes a function to approximate together with the way
// its approximation error is weighted and its extrema are located.
type Target struct {
	// F is the function to approximate. It has to be smooth over Interval.
	F func(x float64) float64

	// Interval is the domain of the approximation.
	Interval Interval

	// Mode selects absolute or relative error.
	Mode ErrorMode

	// Locator relocates the samples at every exchange step.
	Locator Locator

	// PinLeft forces a zero error at the left endpoint instead of
	// the first alternation of the error.
	PinLeft bool

	// ZeroConstant forces the constant coefficient to zero.
	// It is meant to be used together with PinLeft when f(A) = 0 and A = 0.
	ZeroConstant bool
}

// Validate checks that the target is fully specified.
func (t Target) Validate() error {
	if t.F == nil {
		return errors.New("invalid target: F is nil")
	}
	if t.Locator == nil {
		return errors.New("invalid target: Locator is nil")
	}
	return t.Interval.Validate()
}

// Signs returns the sign vector of m samples: alternating +1 and -1,
// with a leading 0 if the left endpoint is pinned.
func (t Target) Signs(m int) (signs []float64) {
	signs = utils.Alternating[float64](m)
	if t.PinLeft && m > 0 {
		signs[0] = 0
	}
	return
}

// Errors returns the weighted errors of p against F at the points x.
func (t Target) Errors(p Polynomial, x []float64) (errs []float64) {
	errs = make([]float64, len(x))
	for i := range x {
		errs[i] = t.Mode.Error(p.Evaluate(x[i]), t.F(x[i]))
	}
	return
}
