package remez

import (
	"fmt"
	"math"
)

// ChebyshevNodes returns n Chebyshev nodes of the first kind in
// ascending order: sin(t) for n angles t uniformly spaced strictly
// inside (-pi/2, pi/2).
func ChebyshevNodes(n int) (nodes []float64) {
	nodes = make([]float64, n)
	for k := range nodes {
		nodes[k] = math.Sin(-math.Pi/2 + math.Pi*float64(2*k+1)/float64(2*n))
	}
	return
}

// Rescale affinely maps the ascending slice x so that its first and last
// elements land exactly on in.A and in.B. x must hold at least two distinct values.
func Rescale(x []float64, in Interval) (y []float64) {

	xmin, xmax := x[0], x[len(x)-1]
	span := xmax - xmin

	y = make([]float64, len(x))
	for i := range x {
		y[i] = (x[i]-xmin)*(in.B/span) + (xmax-x[i])*(in.A/span)
	}

	// The affine map is exact only up to rounding.
	y[0], y[len(y)-1] = in.A, in.B

	return
}

// InitialSamples returns n Chebyshev nodes rescaled onto in.
func InitialSamples(n int, in Interval) ([]float64, error) {

	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples but have %d", ErrTooFewSamples, n)
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return Rescale(ChebyshevNodes(n), in), nil
}
