package remez

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrorMode selects how the deviation between the polynomial
// and the target function is weighted.
type ErrorMode int

const (
	// Absolute measures p(x) - f(x).
	Absolute = ErrorMode(0)
	// Relative measures (p(x) - f(x)) / f(x).
	Relative = ErrorMode(1)
)

func (m ErrorMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return fmt.Sprintf("ErrorMode(%d)", int(m))
	}
}

// Weight returns the factor applied to the error unknown
// in the row of a sample whose target value is y.
func (m ErrorMode) Weight(y float64) float64 {
	if m == Relative {
		return y
	}
	return 1
}

// Error returns the weighted error of the approximation value p
// against the target value y.
func (m ErrorMode) Error(p, y float64) float64 {
	if m == Relative {
		return (p - y) / y
	}
	return p - y
}

// Solve constructs and solves the linear system of one exchange step
//
//	| 1 x0 x0^2 ... x0^d  s0*w0 |   | c0 |   | y0 |
//	| 1 x1 x1^2 ... x1^d  s1*w1 |   | c1 |   | y1 |
//	|            .              | * |  . | = |  . |
//	| 1 xn xn^2 ... xn^d  sn*wn |   |  E |   | yn |
//
// with d = order, n = order+1, s the sign vector and w the weights
// of mode. It returns the polynomial c0 + c1x + ... + cdx^d and E.
func Solve(x, signs, y []float64, order int, mode ErrorMode) (p Polynomial, e float64, err error) {

	m := order + 2

	if len(x) != m || len(signs) != m || len(y) != m {
		return nil, 0, fmt.Errorf("%w: order %d requires %d samples, signs and values but have %d, %d and %d", ErrShapeMismatch, order, m, len(x), len(signs), len(y))
	}

	a := make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, m)
		pow := 1.0
		for j := 0; j < order+1; j++ {
			a[i][j] = pow
			pow *= x[i]
		}
		a[i][m-1] = signs[i] * mode.Weight(y[i])
	}

	sol, err := SolveSquare(a, y)
	if err != nil {
		return nil, 0, err
	}

	return Polynomial(sol[:order+1]), sol[order+1], nil
}

// SolveSquare solves a * x = b for a dense square matrix a given by rows,
// using an LU decomposition with partial pivoting. A singular matrix, or one
// whose condition number exceeds mat.ConditionTolerance, is reported as a
// *DomainError with ReasonSingularSystem.
func SolveSquare(a [][]float64, b []float64) (x []float64, err error) {

	n := len(a)

	if n == 0 || len(b) != n {
		return nil, fmt.Errorf("%w: system of %d rows with %d right-hand side values", ErrShapeMismatch, n, len(b))
	}

	A := mat.NewDense(n, n, nil)
	for i := range a {
		if len(a[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShapeMismatch, i, len(a[i]), n)
		}
		A.SetRow(i, a[i])
	}

	B := mat.NewVecDense(n, append([]float64{}, b...))

	var lu mat.LU
	lu.Factorize(A)

	var X mat.VecDense
	if err = lu.SolveVecTo(&X, false, B); err != nil {
		return nil, newDomainError(ReasonSingularSystem, "%d x %d system: %v", n, n, err)
	}

	x = make([]float64, n)
	for i := range x {
		x[i] = X.AtVec(i)
	}

	return x, nil
}
