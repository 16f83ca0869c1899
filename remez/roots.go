package remez

import (
	"gonum.org/v1/gonum/mat"
)

// Roots returns the complex roots of p, computed as the eigenvalues
// of the companion matrix of p. Zero coefficients of highest degree are
// ignored and zero coefficients of lowest degree contribute roots at 0.
// The roots are returned in no particular order.
func Roots(p Polynomial) (roots []complex128, err error) {

	// Drops leading zeros
	n := len(p) - 1
	for n >= 0 && p[n] == 0 {
		n--
	}

	if n < 0 {
		return nil, newDomainError(ReasonRootFinding, "zero polynomial")
	}

	// Factors out x^k
	var k int
	for k < n && p[k] == 0 {
		k++
	}

	roots = make([]complex128, k, n)

	q := p[k : n+1]
	deg := len(q) - 1

	switch deg {
	case 0:
		return roots, nil
	case 1:
		return append(roots, complex(-q[0]/q[1], 0)), nil
	}

	// Companion matrix of the monic polynomial q/q[deg]
	// | 0 0 ... 0 -q0/qd |
	// | 1 0 ... 0 -q1/qd |
	// | 0 1 ... 0 -q2/qd |
	// |       .          |
	// | 0 0 ... 1 -q(d-1)/qd |
	c := mat.NewDense(deg, deg, nil)
	for i := 0; i < deg; i++ {
		if i > 0 {
			c.Set(i, i-1, 1)
		}
		c.Set(i, deg-1, -q[i]/q[deg])
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, newDomainError(ReasonRootFinding, "eigenvalue decomposition of the degree %d companion matrix did not converge", deg)
	}

	return append(roots, eig.Values(nil)...), nil
}
