package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCronbachAlpha_KnownValue(t *testing.T) {
	// Two items, four respondents; hand-computed with sample variance:
	// var1=5/3, var2=35/12, var(sum)=107/12 -> alpha ~= 0.9720.
	data := [][]float64{
		{1, 2},
		{2, 3},
		{3, 4},
		{4, 6},
	}
	got := CronbachAlpha(data)
	assert.InDelta(t, 0.9720, got, 1e-3)
}

func TestCronbachAlpha_ZeroVarianceIsNaN(t *testing.T) {
	data := [][]float64{
		{3, 3},
		{3, 3},
		{3, 3},
	}
	assert.True(t, math.IsNaN(CronbachAlpha(data)))
}

func TestCronbachAlpha_TooFewItemsIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(CronbachAlpha([][]float64{{1}, {2}, {3}})))
	assert.True(t, math.IsNaN(CronbachAlpha(nil)))
	assert.True(t, math.IsNaN(CronbachAlpha([][]float64{{1, 2}})))
}

func TestAlphaLabel(t *testing.T) {
	cases := []struct {
		alpha float64
		want  string
	}{
		{0.95, AlphaExcellent},
		{0.85, AlphaGood},
		{0.75, AlphaAcceptable},
		{0.65, AlphaQuestionable},
		{0.30, AlphaPoor},
		{math.NaN(), AlphaUndefined},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AlphaLabel(c.alpha))
	}
}
