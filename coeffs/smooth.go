package coeffs

import (
	"fmt"

	"github.com/ufxr/minimax/remez"
)

// SmoothOddCoefficients returns the coefficients a_0, ..., a_{order-1} of the odd
// polynomial p(u) = sum a_k u^(2k+1) approximating sin(pi u / 2) on [-1, 1] such that
// p(1) = 1 and the derivatives of order 1, 3, ..., 2*order-3 of p vanish at u = 1.
func SmoothOddCoefficients(order int) ([]float64, error) {

	if order < 1 {
		return nil, fmt.Errorf("%w: smooth odd polynomial of order %d", ErrOrderTooLow, order)
	}

	a := make([][]float64, order)
	b := make([]float64, order)

	// d^(2n+1)/du^(2n+1) u^(2k+1) at u = 1
	for n := 0; n < order-1; n++ {
		a[n] = make([]float64, order)
		for k := range a[n] {
			a[n][k] = fallingFactorial(2*k+1, 2*n+1)
		}
		// Row equilibration, the largest entry is the last one.
		scale := a[n][order-1]
		for k := range a[n] {
			a[n][k] /= scale
		}
	}

	// p(1) = 1
	a[order-1] = make([]float64, order)
	for k := range a[order-1] {
		a[order-1][k] = 1
	}
	b[order-1] = 1

	return remez.SolveSquare(a, b)
}

// fallingFactorial returns n (n-1) ... (n-k+1).
func fallingFactorial(n, k int) (f float64) {
	f = 1
	for i := 0; i < k; i++ {
		f *= float64(n - i)
	}
	return
}
