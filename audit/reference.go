package audit

import (
	"math/big"

	"github.com/ufxr/minimax/coeffs"
	"github.com/ufxr/minimax/utils/bignum"
)

// reference returns the function of fn evaluated with prec bits of precision.
func reference(fn coeffs.Function, prec uint) func(x float64) *big.Float {
	switch fn {
	case coeffs.Exp2:
		return func(x float64) *big.Float {
			return bignum.Exp2(bignum.NewFloat(x, prec))
		}
	case coeffs.Sin1Smooth, coeffs.Sin1Minimax:
		return func(x float64) *big.Float {
			return bignum.SinTau(bignum.NewFloat(x, prec))
		}
	default:
		return nil
	}
}

// weightedError returns |p - y| or |p - y| / |y|.
func weightedError(p float64, y *big.Float, relative bool) float64 {
	e := bignum.NewFloat(p, y.Prec())
	e.Sub(e, y)
	if relative {
		e.Quo(e, y)
	}
	f, _ := e.Abs(e).Float64()
	return f
}
