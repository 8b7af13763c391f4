package survey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImputeMissing_BelowThreshold(t *testing.T) {
	reg := DefaultRegistry()
	vals := []float64{5, 3, math.NaN(), 3, 5, 3, 5, 3, 5, 3}
	f := fullFrame(t, reg, []float64{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}, make([]float64, 10))
	require.NoError(t, f.SetNumeric("motivation_q1", vals))

	res := ImputeMissing(f, reg, DefaultImputeThreshold, zap.NewNop())

	// Original frame untouched.
	orig, _ := f.Numeric("motivation_q1")
	assert.True(t, math.IsNaN(orig[2]))

	got, _ := res.Frame.Numeric("motivation_q1")
	mean := (5.0*4 + 3.0*5) / 9
	assert.InDelta(t, mean, got[2], 1e-9)

	require.Len(t, res.Imputed, 1)
	assert.Equal(t, "motivation_q1", res.Imputed[0].Column)
	assert.InDelta(t, 0.1, res.Imputed[0].MissingFraction, 1e-9)
	assert.Empty(t, res.StillMissing)
}

func TestImputeMissing_AtThresholdWarnsOnly(t *testing.T) {
	reg := DefaultRegistry()
	f := fullFrame(t, reg, []float64{3, 3, 3, 3, 3}, make([]float64, 5))
	// 1 of 5 missing = 20%, which is not below the 20% threshold.
	require.NoError(t, f.SetNumeric("peer_q1", []float64{4, 4, 4, 4, math.NaN()}))

	res := ImputeMissing(f, reg, DefaultImputeThreshold, zap.NewNop())

	got, _ := res.Frame.Numeric("peer_q1")
	assert.True(t, math.IsNaN(got[4]))
	assert.Empty(t, res.Imputed)
	assert.Equal(t, []string{"peer_q1"}, res.StillMissing)
}

func TestImputeMissing_IgnoresUndeclaredColumns(t *testing.T) {
	reg := DefaultRegistry()
	f := fullFrame(t, reg, []float64{3, 3}, []float64{50, 50})
	require.NoError(t, f.SetNumeric("free_text_code", []float64{math.NaN(), 1}))

	res := ImputeMissing(f, reg, DefaultImputeThreshold, zap.NewNop())
	got, _ := res.Frame.Numeric("free_text_code")
	assert.True(t, math.IsNaN(got[0]))
	assert.Empty(t, res.Imputed)
}
