package coeffs

import (
	"context"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/ufxr/minimax/remez"
)

// Request identifies one fitting run.
type Request struct {
	Function Function
	Order    int

	// MaxIterations overrides remez.DefaultMaxIterations if non-zero.
	MaxIterations int
	// Debug logs the progress of the exchange algorithm.
	Debug bool
}

// Result is the coefficient sequence of one (function, order) pair.
type Result struct {
	Function Function
	Order    int
	// Coefficients are in ascending power order, after post-processing.
	Coefficients []float64
	// Status tells how the exchange algorithm terminated.
	// Constrained fits always report remez.StatusConverged.
	Status remez.Status
	// MaxError is the maximum weighted error at the final extrema for
	// exchange fits, and the maximum error on a uniform grid for constrained fits.
	MaxError float64
	// Iterations is the number of exchange steps, 0 for constrained fits.
	Iterations int
}

// Equal returns true if the two results are identical.
func (r Result) Equal(other Result) bool {
	res := r.Function == other.Function
	res = res && (r.Order == other.Order)
	res = res && (r.Status == other.Status)
	res = res && (r.Iterations == other.Iterations)
	res = res && (r.MaxError == other.MaxError)
	res = res && cmp.Equal(r.Coefficients, other.Coefficients)
	return res
}

func (r Result) String() string {
	return fmt.Sprintf("%s order %d: %s after %d iterations, error %.3e", r.Function, r.Order, r.Status, r.Iterations, r.MaxError)
}

// Fit computes the coefficients of req.Function for req.Order.
// The request is validated before any linear system is solved.
// Numerical failures are returned as *remez.DomainError.
func Fit(ctx context.Context, req Request) (res Result, err error) {

	d, err := req.Function.Descriptor()
	if err != nil {
		return
	}

	if req.Order < d.MinOrder {
		return res, fmt.Errorf("%w: %s requires order >= %d but got %d", ErrOrderTooLow, d.Name, d.MinOrder, req.Order)
	}

	res = Result{
		Function: req.Function,
		Order:    req.Order,
	}

	switch d.Strategy {
	case Exchange:

		var r *remez.Remez
		if r, err = remez.NewRemez(remez.Parameters{
			Target:        d.Target(),
			Order:         req.Order,
			MaxIterations: req.MaxIterations,
			Debug:         req.Debug,
		}); err != nil {
			return Result{}, err
		}

		var approx remez.Result
		if approx, err = r.Approximate(ctx); err != nil {
			return Result{}, fmt.Errorf("%s: %w", d.Name, err)
		}

		res.Coefficients = d.Rule.Apply(approx.Coeffs)
		res.Status = approx.Status
		res.MaxError = approx.Error
		res.Iterations = approx.Iterations

	case Constrained:

		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		var c []float64
		if c, err = SmoothOddCoefficients(req.Order); err != nil {
			return Result{}, fmt.Errorf("%s: order %d: %w", d.Name, req.Order, err)
		}

		res.Coefficients = d.Rule.Apply(c)
		res.Status = remez.StatusConverged
		res.MaxError = d.GridError(res.Coefficients, 1024)

	default:
		panic(fmt.Errorf("invalid strategy %d for %s", d.Strategy, d.Name))
	}

	for i, c := range res.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Result{}, fmt.Errorf("%s: order %d: %w", d.Name, req.Order,
				&remez.DomainError{Reason: remez.ReasonNonFinite, Detail: fmt.Sprintf("coefficient %d is %v", i, c)})
		}
	}

	return res, nil
}

// GridError returns the maximum weighted error of the coefficients c
// on n+1 uniformly spaced points of the interval of the function.
func (d Descriptor) GridError(c []float64, n int) (max float64) {
	step := (d.Interval.B - d.Interval.A) / float64(n)
	for i := 0; i <= n; i++ {
		x := d.Interval.A + float64(i)*step
		if e := math.Abs(d.Mode.Error(d.Evaluate(c, x), d.F(x))); e > max || math.IsNaN(e) {
			max = e
		}
	}
	return
}
