package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadratureInterval(t *testing.T) {
	q := Quadrature{}

	t.Run("sine over half period", func(t *testing.T) {
		v, err := q.Interval(math.Sin, 0, math.Pi)
		require.NoError(t, err)
		assert.InEpsilon(t, 2., v, 1e-10)
	})

	t.Run("reversed bounds change sign", func(t *testing.T) {
		v, err := q.Interval(math.Sin, math.Pi, 0)
		require.NoError(t, err)
		assert.InEpsilon(t, -2., v, 1e-10)
	})

	t.Run("empty interval", func(t *testing.T) {
		v, err := q.Interval(math.Sin, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 0., v)
	})

	t.Run("kink", func(t *testing.T) {
		v, err := q.Interval(func(x float64) float64 { return math.Abs(x - 1./3.) }, 0, 1)
		require.NoError(t, err)
		assert.InEpsilon(t, 5./18., v, 1e-9)
	})
}

func TestQuadratureSemiInfinite(t *testing.T) {
	q := Quadrature{}
	tests := []struct {
		name     string
		f        func(float64) float64
		from     float64
		scale    float64
		expected float64
	}{
		{"x exp(-x)", func(x float64) float64 { return x * math.Exp(-x) }, 0, 1, 1},
		{"exp(-x/300) from 2", func(x float64) float64 { return math.Exp(-x / 300) }, 2, 300, 300 * math.Exp(-2./300.)},
		{"x exp(-x/10) from 7", func(x float64) float64 { return x * math.Exp(-x/10) }, 7, 10, 10 * math.Exp(-0.7) * (7 + 10)},
		{"default scale", func(x float64) float64 { return math.Exp(-x) }, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := q.SemiInfinite(tt.f, tt.from, tt.scale)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, v, 1e-9)
		})
	}
}

func TestQuadratureFailures(t *testing.T) {
	t.Run("non finite integrand", func(t *testing.T) {
		_, err := Quadrature{}.Interval(func(float64) float64 { return math.NaN() }, 0, 1)
		assert.ErrorIs(t, err, ErrNonFinite)
	})

	t.Run("depth exhausted", func(t *testing.T) {
		q := Quadrature{Order: 2, RelTol: 1e-15, AbsTol: 1e-300, InitialPanels: 1, MaxDepth: 1}
		_, err := q.Interval(func(x float64) float64 { return math.Abs(x - 1./3.) }, 0, 1)
		assert.ErrorIs(t, err, ErrNotConverged)
	})
}
