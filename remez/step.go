package remez

import (
	"math"

	"github.com/ufxr/minimax/utils"
)

// Transition is the outcome of one exchange step.
type Transition int

const (
	// Continue: the error improved significantly, the new state is accepted.
	Continue = Transition(iota)
	// Converged: the error improved by less than the threshold, the new state is accepted.
	Converged
	// Regressed: the error did not improve, the previous state is kept.
	Regressed
)

func (t Transition) String() string {
	switch t {
	case Continue:
		return "continue"
	case Converged:
		return "converged"
	case Regressed:
		return "regressed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the exchange algorithm between two steps.
type State struct {
	// Samples are the points on which the next linear system is built.
	// They are the extrema of the error of Coeffs.
	Samples []float64
	// Coeffs is the last accepted polynomial, nil before the first step.
	Coeffs Polynomial
	// Error is the maximum weighted error of Coeffs at its extrema, +Inf before the first step.
	Error float64
}

// InitialState returns the state seeding a run of the exchange
// algorithm: order+2 Chebyshev nodes rescaled onto the target interval.
func InitialState(t Target, order int) (State, error) {

	if err := t.Validate(); err != nil {
		return State{}, err
	}

	samples, err := InitialSamples(order+2, t.Interval)
	if err != nil {
		return State{}, err
	}

	return State{Samples: samples, Error: math.Inf(1)}, nil
}

// Step performs one exchange step from prev: it solves for the
// polynomial equioscillating on prev.Samples, relocates the samples to
// the extrema of its error and compares the new maximum error with
// prev.Error. It neither reads nor modifies anything but its arguments.
func Step(t Target, order int, threshold float64, prev State) (next State, tr Transition, err error) {

	x := prev.Samples

	y := utils.Map(x, t.F)

	p, _, err := Solve(x, t.Signs(len(x)), y, order, t.Mode)
	if err != nil {
		return prev, tr, err
	}

	if t.ZeroConstant {
		p[0] = 0
	}

	samples, probes, err := t.Locator.Locate(t.Interval, p, x)
	if err != nil {
		return prev, tr, err
	}

	if !utils.IsStrictlyAscending(samples) {
		return prev, tr, newDomainError(ReasonNotAscending, "%v", samples)
	}

	e, _ := utils.MaxAbs(t.Errors(p, probes))

	if math.IsNaN(e) || math.IsInf(e, 0) {
		return prev, tr, newDomainError(ReasonNonFinite, "maximum error is %v", e)
	}

	next = State{Samples: samples, Coeffs: p, Error: e}

	if math.IsInf(prev.Error, 1) {
		return next, Continue, nil
	}

	if prev.Error == 0 {
		return prev, Converged, nil
	}

	improvement := (prev.Error - e) / prev.Error

	switch {
	case improvement <= 0:
		return prev, Regressed, nil
	case improvement < threshold:
		return next, Converged, nil
	default:
		return next, Continue, nil
	}
}
