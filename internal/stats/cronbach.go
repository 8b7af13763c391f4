package stats

import "math"

// Alpha interpretation labels, keyed by the conventional thresholds.
const (
	AlphaExcellent    = "Excellent"
	AlphaGood         = "Good"
	AlphaAcceptable   = "Acceptable"
	AlphaQuestionable = "Questionable"
	AlphaPoor         = "Poor"
	AlphaUndefined    = "Undefined"
)

// CronbachAlpha computes the internal-consistency coefficient for a
// complete-case matrix shaped [nRespondents][kItems], using sample
// variance (N-1 denominator).
//
// Alpha is NaN when there are fewer than two items, fewer than two rows,
// or the variance of the row sums is zero. Degenerate inputs never panic.
func CronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n < 2 {
		return math.NaN()
	}
	k := len(matrix[0])
	if k < 2 {
		return math.NaN()
	}

	sumItemVars := 0.0
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			col[i] = matrix[i][j]
		}
		sumItemVars += sampleVariance(col)
	}
	totals := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < k; j++ {
			s += matrix[i][j]
		}
		totals[i] = s
	}
	totalVar := sampleVariance(totals)
	if totalVar == 0 {
		return math.NaN()
	}
	kf := float64(k)
	return (kf / (kf - 1)) * (1 - sumItemVars/totalVar)
}

// AlphaLabel maps an alpha value onto its qualitative interpretation.
// NaN is its own category, never "Poor".
func AlphaLabel(alpha float64) string {
	switch {
	case math.IsNaN(alpha):
		return AlphaUndefined
	case alpha >= 0.9:
		return AlphaExcellent
	case alpha >= 0.8:
		return AlphaGood
	case alpha >= 0.7:
		return AlphaAcceptable
	case alpha >= 0.6:
		return AlphaQuestionable
	default:
		return AlphaPoor
	}
}

func sampleVariance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range xs {
		mean += v
	}
	mean /= float64(n)
	ss := 0.0
	for _, v := range xs {
		d := v - mean
		ss += d * d
	}
	return ss / float64(n-1)
}
