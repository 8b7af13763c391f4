package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOLS_SimpleFit(t *testing.T) {
	x := make([]float64, 10)
	y := make([]float64, 10)
	noise := []float64{0.1, -0.1, 0.2, -0.2, 0.1, -0.1, 0.2, -0.2, 0.1, -0.1}
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = 2*x[i] + 1 + noise[i]
	}
	res := OLS("y", []string{"x"}, map[string][]float64{"x": x, "y": y})

	require.False(t, res.Undefined)
	assert.Equal(t, 10, res.N)
	assert.Greater(t, float64(res.RSquared), 0.99)
	assert.InDelta(t, 2.0, float64(res.Coefficients["x"]), 0.1)
	assert.InDelta(t, 1.0, float64(res.Intercept), 0.5)
	assert.Less(t, float64(res.PValues["x"]), 0.001)
	assert.Less(t, float64(res.FPValue), 0.001)
	assert.Less(t, float64(res.AdjRSquared), float64(res.RSquared))
}

func TestOLS_MultiplePredictors(t *testing.T) {
	n := 20
	a := make([]float64, n)
	b := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = float64(i + 1)
		b[i] = float64((i*7)%11) + 1
		y[i] = 3*a[i] - 2*b[i] + 5
	}
	res := OLS("y", []string{"a", "b"}, map[string][]float64{"a": a, "b": b, "y": y})
	require.False(t, res.Undefined)
	assert.InDelta(t, 3.0, float64(res.Coefficients["a"]), 1e-6)
	assert.InDelta(t, -2.0, float64(res.Coefficients["b"]), 1e-6)
	assert.InDelta(t, 5.0, float64(res.Intercept), 1e-6)
	assert.InDelta(t, 1.0, float64(res.RSquared), 1e-9)
}

func TestOLS_TooFewRowsUndefined(t *testing.T) {
	res := OLS("y", []string{"x"}, map[string][]float64{
		"x": {1, 2, 3, 4},
		"y": {2, 4, 6, 8},
	})
	assert.True(t, res.Undefined)
	assert.Equal(t, 4, res.N)
	assert.True(t, math.IsNaN(float64(res.RSquared)))
}

func TestOLS_CompleteCaseFiltering(t *testing.T) {
	x := []float64{1, 2, 3, math.NaN(), 5, 6, 7}
	y := []float64{2, 4, 6, 8, math.NaN(), 12, 14}
	res := OLS("y", []string{"x"}, map[string][]float64{"x": x, "y": y})
	require.False(t, res.Undefined)
	assert.Equal(t, 5, res.N)
	assert.InDelta(t, 2.0, float64(res.Coefficients["x"]), 1e-9)
}

func TestOLS_ZeroOutcomeVarianceUndefined(t *testing.T) {
	res := OLS("y", []string{"x"}, map[string][]float64{
		"x": {1, 2, 3, 4, 5, 6},
		"y": {7, 7, 7, 7, 7, 7},
	})
	assert.True(t, res.Undefined)
}

func TestOLS_AbsentColumnUndefined(t *testing.T) {
	res := OLS("y", []string{"x"}, map[string][]float64{"x": {1, 2, 3, 4, 5}})
	assert.True(t, res.Undefined)
	assert.Equal(t, 0, res.N)
}
