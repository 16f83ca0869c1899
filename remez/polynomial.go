package remez

// Polynomial is a real polynomial in the monomial basis,
// coefficient of degree 0 first.
type Polynomial []float64

// Degree returns len(p)-1. Zero leading coefficients are not trimmed.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate returns p(x) using Horner's scheme.
func (p Polynomial) Evaluate(x float64) (y float64) {
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return
}

// Derivative returns p'.
func (p Polynomial) Derivative() (dp Polynomial) {
	if len(p) < 2 {
		return Polynomial{}
	}
	dp = make(Polynomial, len(p)-1)
	for i := range dp {
		dp[i] = float64(i+1) * p[i+1]
	}
	return
}

// Scale returns a*p.
func (p Polynomial) Scale(a float64) (q Polynomial) {
	q = make(Polynomial, len(p))
	for i := range p {
		q[i] = a * p[i]
	}
	return
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) (r Polynomial) {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r = make(Polynomial, n)
	copy(r, p)
	for i := range q {
		r[i] -= q[i]
	}
	return
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	q := make(Polynomial, len(p))
	copy(q, p)
	return q
}
