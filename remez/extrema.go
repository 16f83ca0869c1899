package remez

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/ufxr/minimax/utils"
)

const (
	// DefaultNewtonSteps is the maximum number of Newton-Raphson refinements per exchange step.
	DefaultNewtonSteps = 10
	// DefaultNewtonTolerance is the step size below which the Newton-Raphson refinement stops.
	DefaultNewtonTolerance = 1e-10
	// imagTolerance is the relative magnitude of an imaginary part above which a root is complex.
	imagTolerance = 1e-12
)

// Locator relocates the sample points of an exchange step to the
// extrema of the weighted error of the trial polynomial p.
type Locator interface {
	// Locate returns the new strictly ascending sample set, of the same
	// length as x, and the points at which the error must be measured.
	Locate(in Interval, p Polynomial, x []float64) (samples, probes []float64, err error)
}

// CriticalRoots locates the extrema as the real roots of a polynomial
// derived analytically from p, whose roots are the critical points of
// the weighted error. The endpoints of the interval are kept as samples.
type CriticalRoots struct {
	// Critical returns the critical-point polynomial of p.
	// For example, the critical points of p(x)/2^x - 1 are the
	// roots of ln(2) * p(x) - p'(x).
	Critical func(p Polynomial) Polynomial
}

// Locate implements Locator.
func (c CriticalRoots) Locate(in Interval, p Polynomial, x []float64) (samples, probes []float64, err error) {

	roots, err := Roots(c.Critical(p))
	if err != nil {
		return
	}

	if len(roots) != len(x)-2 {
		return nil, nil, newDomainError(ReasonRootCount, "found %d critical points, expected %d", len(roots), len(x)-2)
	}

	interior := make([]float64, len(roots))
	for i, r := range roots {
		if math.Abs(imag(r)) > imagTolerance*math.Max(1, cmplx.Abs(r)) {
			return nil, nil, newDomainError(ReasonComplexRoots, "root %v", r)
		}
		interior[i] = real(r)
	}

	sort.Float64s(interior)

	if n := len(interior); n != 0 && !(in.ContainsOpen(interior[0]) && in.ContainsOpen(interior[n-1])) {
		return nil, nil, newDomainError(ReasonRootsOutOfInterval, "roots span [%v, %v] but interval is %s", interior[0], interior[n-1], in)
	}

	samples = make([]float64, 0, len(x))
	samples = append(samples, in.A)
	samples = append(samples, interior...)
	samples = append(samples, in.B)

	return samples, samples, nil
}

// Newton locates the extrema by refining the interior samples toward
// the roots of p'(x) - f'(x) with the Newton-Raphson method.
// The first and last samples are kept.
type Newton struct {
	// Df and D2f are the first and second derivatives of the target function.
	Df, D2f func(x float64) float64
	// MaxSteps caps the number of refinements (DefaultNewtonSteps if zero).
	MaxSteps int
	// Tolerance stops the refinement once every step is smaller (DefaultNewtonTolerance if zero).
	Tolerance float64
}

// Locate implements Locator.
func (n Newton) Locate(in Interval, p Polynomial, x []float64) (samples, probes []float64, err error) {

	maxSteps := n.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultNewtonSteps
	}

	tolerance := n.Tolerance
	if tolerance == 0 {
		tolerance = DefaultNewtonTolerance
	}

	samples = make([]float64, len(x))
	copy(samples, x)

	extrema := samples[1 : len(samples)-1]

	dp := p.Derivative()
	ddp := dp.Derivative()

	delta := make([]float64, len(extrema))

	for step := 0; step < maxSteps; step++ {

		for i, xi := range extrema {
			fx := dp.Evaluate(xi) - n.Df(xi)
			dfx := ddp.Evaluate(xi) - n.D2f(xi)
			delta[i] = fx / dfx
			extrema[i] -= delta[i]
		}

		if maxDelta, _ := utils.MaxAbs(delta); maxDelta < tolerance {
			break
		}
	}

	if !utils.IsStrictlyAscending(samples) {
		return nil, nil, newDomainError(ReasonNotAscending, "%v", samples)
	}

	return samples, extrema, nil
}
