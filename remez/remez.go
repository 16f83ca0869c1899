// Package remez implements the Remez exchange algorithm computing
// minimax polynomial approximations, in the monomial basis, of a smooth
// real function over a single interval, under an absolute or relative
// error weighting.
package remez

import (
	"context"
	"fmt"
	"log"
)

const (
	// DefaultMaxIterations is the default cap on the number of exchange steps.
	DefaultMaxIterations = 100
	// DefaultThreshold is the default relative error improvement below which the algorithm has converged.
	DefaultThreshold = 1e-6
)

// Status is the terminal state of a successful run.
type Status int

const (
	// StatusConverged: the error improvement fell below the threshold.
	StatusConverged = Status(iota)
	// StatusRegressed: an exchange step increased the error and was rolled back.
	StatusRegressed
	// StatusExhausted: the iteration cap was reached.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusRegressed:
		return "regressed"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Parameters is a struct storing the parameters
// required to initialize the Remez algorithm.
type Parameters struct {
	// Target is the function to approximate, with its
	// interval, error weighting and extrema locator.
	Target Target

	// Order is the degree of the approximating polynomial.
	Order int

	// MaxIterations caps the number of exchange steps.
	// DefaultMaxIterations is used if zero.
	MaxIterations int

	// Threshold is the relative error improvement below
	// which the run has converged. DefaultThreshold is used if zero.
	Threshold float64

	// Debug logs the error of each exchange step.
	Debug bool
}

// Result is the outcome of a successful run.
type Result struct {
	// Coeffs are the accepted coefficients, degree 0 first.
	Coeffs Polynomial
	// Error is the maximum weighted error of Coeffs at Extrema.
	Error float64
	// Extrema are the points of maximum error of Coeffs.
	Extrema []float64
	// Status tells how the run terminated.
	Status Status
	// Iterations is the number of exchange steps performed.
	Iterations int
	// History holds the error of every accepted step, in order.
	History []float64
}

// Remez is the exchange algorithm for one target and order.
type Remez struct {
	Parameters
}

// NewRemez instantiates a new Remez algorithm from the provided parameters.
func NewRemez(p Parameters) (r *Remez, err error) {

	if p.Order < 0 {
		return nil, fmt.Errorf("%w: negative order %d", ErrTooFewSamples, p.Order)
	}

	if err = p.Target.Validate(); err != nil {
		return nil, err
	}

	if p.MaxIterations == 0 {
		p.MaxIterations = DefaultMaxIterations
	}

	if p.Threshold == 0 {
		p.Threshold = DefaultThreshold
	}

	if p.MaxIterations < 0 || p.Threshold < 0 {
		return nil, fmt.Errorf("invalid parameters: MaxIterations=%d, Threshold=%v", p.MaxIterations, p.Threshold)
	}

	return &Remez{Parameters: p}, nil
}

// Approximate runs the exchange algorithm until it converges, regresses
// or reaches MaxIterations. The context is only checked between two
// exchange steps. Any error aborts the run without partial result.
func (r *Remez) Approximate(ctx context.Context) (res Result, err error) {

	state, err := InitialState(r.Target, r.Order)
	if err != nil {
		return
	}

	var history []float64

	for i := 0; i < r.MaxIterations; i++ {

		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("remez: order %d: iteration %d: %w", r.Order, i, err)
		}

		var next State
		var tr Transition
		if next, tr, err = Step(r.Target, r.Order, r.Threshold, state); err != nil {
			return Result{}, fmt.Errorf("remez: order %d: iteration %d: %w", r.Order, i, err)
		}

		if r.Debug {
			log.Printf("remez: order %d: iteration %2d: error %.6e -> %.6e (%s)", r.Order, i, state.Error, next.Error, tr)
		}

		switch tr {
		case Regressed:
			return newResult(state, StatusRegressed, i+1, history), nil
		case Converged:
			return newResult(next, StatusConverged, i+1, append(history, next.Error)), nil
		}

		history = append(history, next.Error)
		state = next
	}

	return newResult(state, StatusExhausted, r.MaxIterations, history), nil
}

func newResult(s State, status Status, iterations int, history []float64) Result {
	return Result{
		Coeffs:     s.Coeffs.Clone(),
		Error:      s.Error,
		Extrema:    append([]float64{}, s.Samples...),
		Status:     status,
		Iterations: iterations,
		History:    history,
	}
}
