package remez

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {

	t.Run("ExactPolynomial", func(t *testing.T) {
		// f = 1 + 2x is reproduced exactly with a zero error term.
		x := []float64{-1, 0, 1}
		y := []float64{-1, 1, 3}
		p, e, err := Solve(x, []float64{1, -1, 1}, y, 1, Absolute)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{1, 2}, p, 1e-15)
		require.InDelta(t, 0, e, 1e-15)
	})

	t.Run("Equioscillates", func(t *testing.T) {
		// Best constant approximation of {0, 1} is 0.5 with error 0.5.
		p, e, err := Solve([]float64{0, 1}, []float64{1, -1}, []float64{0, 1}, 0, Absolute)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{0.5}, p, 1e-15)
		require.InDelta(t, -0.5, e, 1e-15)
	})

	t.Run("Relative", func(t *testing.T) {
		x := []float64{1, 2}
		y := []float64{1, 4}
		p, e, err := Solve(x, []float64{1, -1}, y, 0, Relative)
		require.NoError(t, err)
		// p + E = 1, p - 4E = 4
		require.InDelta(t, 1.6, p[0], 1e-15)
		require.InDelta(t, -0.6, e, 1e-15)
		require.InDelta(t, 0.6, Relative.Error(p[0], y[0]), 1e-15)
		require.InDelta(t, -0.6, Relative.Error(p[0], y[1]), 1e-15)
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, _, err := Solve([]float64{0, 1}, []float64{1, -1}, []float64{0, 1}, 1, Absolute)
		require.ErrorIs(t, err, ErrShapeMismatch)
		_, err = SolveSquare([][]float64{{1, 2}, {3}}, []float64{1, 2})
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("Singular", func(t *testing.T) {
		_, err := SolveSquare([][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
		var derr *DomainError
		require.True(t, errors.As(err, &derr))
		require.Equal(t, ReasonSingularSystem, derr.Reason)
	})
}
