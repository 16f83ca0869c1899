package remez

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ufxr/minimax/utils"
)

func TestChebyshevNodes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 17} {
		nodes := ChebyshevNodes(n)
		require.Len(t, nodes, n)
		require.True(t, utils.IsStrictlyAscending(nodes))
		for i := range nodes {
			require.Greater(t, nodes[i], -1.0)
			require.Less(t, nodes[i], 1.0)
			require.InDelta(t, -nodes[n-1-i], nodes[i], 1e-15)
		}
	}
}

func TestInitialSamples(t *testing.T) {

	t.Run("Rescaled", func(t *testing.T) {
		for _, in := range []Interval{{A: -0.5, B: 0.5}, {A: 0, B: 0.25}, {A: -3, B: 7}} {
			x, err := InitialSamples(6, in)
			require.NoError(t, err)
			require.Len(t, x, 6)
			require.Equal(t, in.A, x[0])
			require.Equal(t, in.B, x[5])
			require.True(t, utils.IsStrictlyAscending(x))
		}
	})

	t.Run("TooFewSamples", func(t *testing.T) {
		_, err := InitialSamples(1, Interval{A: 0, B: 1})
		require.ErrorIs(t, err, ErrTooFewSamples)
	})

	t.Run("InvalidInterval", func(t *testing.T) {
		for _, in := range []Interval{{A: 1, B: 1}, {A: 1, B: 0}, {A: math.NaN(), B: 1}, {A: 0, B: math.Inf(1)}} {
			_, err := InitialSamples(4, in)
			require.ErrorIs(t, err, ErrInvalidInterval)
		}
	})
}

func TestPolynomial(t *testing.T) {

	p := Polynomial{1, -2, 3}

	require.Equal(t, 2, p.Degree())
	require.Equal(t, 1.0, p.Evaluate(0))
	require.Equal(t, 2.0, p.Evaluate(1))
	require.Equal(t, 17.0, p.Evaluate(-2))
	require.Equal(t, Polynomial{-2, 6}, p.Derivative())
	require.Equal(t, Polynomial{}, Polynomial{5}.Derivative())
	require.Equal(t, Polynomial{2, -4, 6}, p.Scale(2))
	require.Equal(t, Polynomial{0, -3, 3, -1}, p.Sub(Polynomial{1, 1, 0, 1}))

	q := p.Clone()
	q[0] = 7
	require.Equal(t, 1.0, p[0])
	require.Nil(t, Polynomial(nil).Clone())
}
