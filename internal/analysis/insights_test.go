package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugradeai/edugrade/internal/survey"
)

func TestRankScores_TopAndBottomThree(t *testing.T) {
	f := survey.NewFrame(2)
	means := map[string]float64{
		"a_score": 90,
		"b_score": 80,
		"c_score": 70,
		"d_score": 60,
		"e_score": 50,
	}
	for col, m := range means {
		require.NoError(t, f.SetNumeric(col, []float64{m, m}))
	}

	ins := RankScores(f)
	require.Len(t, ins.Strengths, 3)
	require.Len(t, ins.Improvements, 3)
	assert.Equal(t, "a_score", ins.Strengths[0].Name)
	assert.Equal(t, 90.0, float64(ins.Strengths[0].Score))
	assert.Equal(t, "c_score", ins.Improvements[0].Name)
	assert.Equal(t, "e_score", ins.Improvements[2].Name)
}

func TestRankScores_FewColumnsOverlap(t *testing.T) {
	f := survey.NewFrame(1)
	require.NoError(t, f.SetNumeric("a_score", []float64{40}))
	require.NoError(t, f.SetNumeric("b_score", []float64{60}))

	ins := RankScores(f)
	assert.Len(t, ins.Strengths, 2)
	assert.Len(t, ins.Improvements, 2)
	assert.Equal(t, "b_score", ins.Strengths[0].Name)
}

func TestRankScores_ExcludesUndefinedMeans(t *testing.T) {
	f := survey.NewFrame(2)
	require.NoError(t, f.SetNumeric("a_score", []float64{50, 70}))
	require.NoError(t, f.SetNumeric("empty_score", []float64{math.NaN(), math.NaN()}))

	ins := RankScores(f)
	for _, s := range append(ins.Strengths, ins.Improvements...) {
		assert.NotEqual(t, "empty_score", s.Name)
	}
}
