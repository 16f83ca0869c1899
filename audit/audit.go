// Package audit measures the accuracy of coefficient tables against
// an arbitrary precision evaluation of the approximated functions.
package audit

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/ufxr/minimax/coeffs"
	"github.com/ufxr/minimax/remez"
	"github.com/ufxr/minimax/table"
	"github.com/ufxr/minimax/utils"
	"github.com/ufxr/minimax/utils/bignum"
	"github.com/ufxr/minimax/utils/sampling"
)

const (
	// DefaultGrid is the default number of uniformly spaced points.
	DefaultGrid = 4097
	// DefaultProbes is the default number of pseudo-random points.
	DefaultProbes = 1024
	// DefaultPrec is the default precision of the reference, in bits.
	DefaultPrec = 128
)

// Options configures Run. Zero values select the defaults.
type Options struct {
	// Grid is the number of uniformly spaced points, endpoints included.
	Grid int
	// Probes is the number of points sampled from a PRNG keyed with
	// "<function>/<order>", so that reports are reproducible.
	Probes int
	// Prec is the precision of the reference evaluation, in bits,
	// at most bignum.MaxPrec.
	Prec uint
}

// Report holds the error statistics of a coefficient sequence. Errors are
// absolute or relative following the error mode of the function.
type Report struct {
	Function coeffs.Function
	Order    int
	Points   int

	Max    float64
	ArgMax float64
	Mean   float64
	P99    float64
	StdDev float64

	// MaxFloat32 is the maximum error once the coefficients are rounded to float32.
	MaxFloat32 float64
}

func (r Report) String() string {
	return fmt.Sprintf("%s order %2d: max %.3e at %+.6f, mean %.3e, p99 %.3e, stddev %.3e, float32 max %.3e",
		r.Function, r.Order, r.Max, r.ArgMax, r.Mean, r.P99, r.StdDev, r.MaxFloat32)
}

// Run evaluates the coefficients c of fn for the given order, as produced by coeffs.Fit,
// and reports their error against the reference.
func Run(fn coeffs.Function, order int, c []float64, opts Options) (r Report, err error) {

	d, err := fn.Descriptor()
	if err != nil {
		return
	}

	if order < d.MinOrder {
		return r, fmt.Errorf("audit: %w: %s requires order >= %d but got %d", coeffs.ErrOrderTooLow, d.Name, d.MinOrder, order)
	}

	if len(c) != d.Terms(order) {
		return r, fmt.Errorf("audit: %w: %s order %d has %d coefficients but got %d", remez.ErrShapeMismatch, d.Name, order, d.Terms(order), len(c))
	}

	if opts.Grid == 0 {
		opts.Grid = DefaultGrid
	}

	if opts.Probes == 0 {
		opts.Probes = DefaultProbes
	}

	if opts.Prec == 0 {
		opts.Prec = DefaultPrec
	}

	if opts.Prec > bignum.MaxPrec {
		return r, fmt.Errorf("audit: invalid precision %d: must be at most %d bits", opts.Prec, bignum.MaxPrec)
	}

	if opts.Grid < 2 || opts.Probes < 0 {
		return r, fmt.Errorf("audit: %w: grid of %d points and %d probes", remez.ErrTooFewSamples, opts.Grid, opts.Probes)
	}

	x := make([]float64, opts.Grid, opts.Grid+opts.Probes)
	step := (d.Interval.B - d.Interval.A) / float64(opts.Grid-1)
	for i := range x {
		x[i] = d.Interval.A + float64(i)*step
	}
	x[opts.Grid-1] = d.Interval.B

	prng, err := sampling.NewKeyedPRNG([]byte(fmt.Sprintf("%s/%d", d.Name, order)))
	if err != nil {
		return
	}

	probes, err := sampling.Uniform(prng, d.Interval.A, d.Interval.B, opts.Probes)
	if err != nil {
		return
	}
	x = append(x, probes...)

	c32 := utils.Map(c, func(v float64) float64 { return float64(float32(v)) })

	f := reference(fn, opts.Prec)
	relative := d.Mode == remez.Relative

	errs := make([]float64, len(x))
	errs32 := make([]float64, len(x))

	var y *big.Float
	for i, xi := range x {
		y = f(xi)
		errs[i] = weightedError(d.Evaluate(c, xi), y, relative)
		errs32[i] = weightedError(d.Evaluate(c32, xi), y, relative)
	}

	r = Report{
		Function: fn,
		Order:    order,
		Points:   len(x),
	}

	var idx int
	r.Max, idx = utils.MaxAbs(errs)
	r.ArgMax = x[idx]
	r.MaxFloat32, _ = utils.MaxAbs(errs32)

	if r.Mean, err = stats.Mean(errs); err != nil {
		return Report{}, fmt.Errorf("audit: mean: %w", err)
	}

	if r.P99, err = stats.Percentile(errs, 99); err != nil {
		return Report{}, fmt.Errorf("audit: percentile: %w", err)
	}

	if r.StdDev, err = stats.StandardDeviation(errs); err != nil {
		return Report{}, fmt.Errorf("audit: standard deviation: %w", err)
	}

	return
}

// RunTable runs the audit of every row of t.
func RunTable(t table.Table, opts Options) (reports []Report, err error) {
	reports = make([]Report, len(t.Rows))
	for i, row := range t.Rows {
		if reports[i], err = Run(t.Function, row.Order, row.Coefficients, opts); err != nil {
			return nil, fmt.Errorf("order %d: %w", row.Order, err)
		}
	}
	return
}
