// Package coeffs computes the coefficient tables of the approximated
// functions: it holds the closed set of supported functions, fits one
// (function, order) pair at a time and drives batches of orders.
package coeffs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ufxr/minimax/remez"
)

const tau = 2 * math.Pi

var (
	// ErrUnknownFunction is returned for a function that is not part of the supported set.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrOrderTooLow is returned for an order below the minimum order of a function.
	ErrOrderTooLow = errors.New("order too low")
)

// Function identifies one of the approximated functions.
type Function int

const (
	// Exp2 is 2^x on (-0.5, 0.5), minimizing the relative error.
	Exp2 = Function(iota)
	// Sin1Smooth is sin(2 pi x) on (-0.25, 0.25) as an odd polynomial whose
	// odd derivatives vanish at the quarter period. Only odd coefficients are kept.
	Sin1Smooth
	// Sin1Minimax is sin(2 pi x) on (0, 0.25), minimizing the absolute error
	// with a zero constant term, which is omitted.
	Sin1Minimax
)

// Strategy is the way coefficients of a function are computed.
type Strategy int

const (
	// Exchange runs the Remez exchange algorithm.
	Exchange = Strategy(0)
	// Constrained solves a single linear system of derivative constraints.
	Constrained = Strategy(1)
)

// Descriptor holds everything the fitting pipeline needs to know about a function.
type Descriptor struct {
	// Name is the identifier of the function in tables and on the command line.
	Name string
	// MinOrder is the smallest order for which the fit is defined.
	MinOrder int
	// Interval is the domain of the approximation, in the natural argument.
	Interval remez.Interval
	// Mode is the error weighting used to fit and to audit the function.
	Mode remez.ErrorMode
	// Strategy selects between the exchange algorithm and a constrained solve.
	Strategy Strategy
	// F is the function in its natural argument.
	F func(x float64) float64
	// Locator relocates the extrema, for the Exchange strategy.
	Locator remez.Locator
	// PinLeft and ZeroConstant are forwarded to remez.Target.
	PinLeft, ZeroConstant bool
	// Rule is applied to the accepted coefficients.
	Rule Rule
}

var descriptors = [...]Descriptor{
	Exp2: {
		Name:     "exp2",
		MinOrder: 2,
		Interval: remez.Interval{A: -0.5, B: 0.5},
		Mode:     remez.Relative,
		Strategy: Exchange,
		F:        math.Exp2,
		Locator: remez.CriticalRoots{
			// (p(x) - 2^x) / 2^x has the same critical points as
			// p'(x) 2^-x - ln(2) 2^-x p(x), i.e. the roots of ln(2) p(x) - p'(x).
			Critical: func(p remez.Polynomial) remez.Polynomial {
				return p.Scale(math.Ln2).Sub(p.Derivative())
			},
		},
	},
	Sin1Smooth: {
		Name:     "sin1_smooth",
		MinOrder: 1,
		Interval: remez.Interval{A: -0.25, B: 0.25},
		Mode:     remez.Absolute,
		Strategy: Constrained,
		F:        func(x float64) float64 { return math.Sin(tau * x) },
		// Fitted for sin(pi u / 2), u = 4x.
		Rule: Rule{ArgumentScale: 4, OddPowers: true},
	},
	Sin1Minimax: {
		Name:     "sin1_minimax",
		MinOrder: 2,
		Interval: remez.Interval{A: 0, B: 0.25},
		Mode:     remez.Absolute,
		Strategy: Exchange,
		F:        func(x float64) float64 { return math.Sin(tau * x) },
		Locator: remez.Newton{
			Df:  func(x float64) float64 { return tau * math.Cos(tau*x) },
			D2f: func(x float64) float64 { return -tau * tau * math.Sin(tau*x) },
		},
		PinLeft:      true,
		ZeroConstant: true,
		Rule:         Rule{DropConstant: true},
	},
}

var aliases = map[string]Function{
	"sin1_l1": Sin1Minimax,
}

// Functions returns the supported functions.
func Functions() []Function {
	return []Function{Exp2, Sin1Smooth, Sin1Minimax}
}

// ParseFunction returns the function registered under name.
func ParseFunction(name string) (Function, error) {
	for _, f := range Functions() {
		if descriptors[f].Name == name {
			return f, nil
		}
	}
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	names := make([]string, 0, len(descriptors))
	for _, f := range Functions() {
		names = append(names, descriptors[f].Name)
	}
	return 0, fmt.Errorf("%w: %q (valid functions are %s)", ErrUnknownFunction, name, strings.Join(names, ", "))
}

// Descriptor returns the descriptor of f.
func (f Function) Descriptor() (Descriptor, error) {
	if f < 0 || int(f) >= len(descriptors) {
		return Descriptor{}, fmt.Errorf("%w: Function(%d)", ErrUnknownFunction, int(f))
	}
	return descriptors[f], nil
}

func (f Function) String() string {
	if d, err := f.Descriptor(); err == nil {
		return d.Name
	}
	return fmt.Sprintf("Function(%d)", int(f))
}

// Target returns the exchange algorithm target of the function.
func (d Descriptor) Target() remez.Target {
	return remez.Target{
		F:            d.F,
		Interval:     d.Interval,
		Mode:         d.Mode,
		Locator:      d.Locator,
		PinLeft:      d.PinLeft,
		ZeroConstant: d.ZeroConstant,
	}
}

// Terms returns the number of coefficients produced for the given order.
func (d Descriptor) Terms(order int) int {
	if d.Strategy == Constrained {
		return order
	}
	if d.Rule.DropConstant {
		return order
	}
	return order + 1
}

// Evaluate evaluates the coefficients c, as produced by the fit of the
// function, at x in the natural argument of the function.
func (d Descriptor) Evaluate(c []float64, x float64) float64 {
	p := remez.Polynomial(c)
	switch {
	case d.Rule.OddPowers:
		return x * p.Evaluate(x*x)
	case d.Rule.DropConstant:
		return x * p.Evaluate(x)
	default:
		return p.Evaluate(x)
	}
}
