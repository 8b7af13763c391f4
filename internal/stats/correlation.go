package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Matrix is a symmetric Pearson correlation matrix over named variables.
// A zero-variance variable yields NaN entries, including on the diagonal.
type Matrix struct {
	Columns []string                    `json:"columns"`
	Values  map[string]map[string]Float `json:"values"`
}

// CorrelationTest is a targeted two-tailed significance test between two
// variables.
type CorrelationTest struct {
	R           Float `json:"correlation"`
	PValue      Float `json:"p_value"`
	N           int   `json:"n"`
	Significant bool  `json:"significant"`
}

// completePairs keeps only the indices where both variables are present.
func completePairs(x, y []float64) ([]float64, []float64) {
	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	return cx, cy
}

// Pearson computes the pairwise-complete Pearson correlation. Fewer than
// two complete pairs, or zero variance in either variable, gives NaN.
func Pearson(x, y []float64) float64 {
	cx, cy := completePairs(x, y)
	if len(cx) < 2 {
		return math.NaN()
	}
	return stat.Correlation(cx, cy, nil)
}

// PearsonMatrix computes the correlation matrix over the named columns.
// Symmetry holds by construction: each pair is computed once and mirrored.
func PearsonMatrix(cols []string, data map[string][]float64) Matrix {
	m := Matrix{Columns: cols, Values: make(map[string]map[string]Float, len(cols))}
	for _, c := range cols {
		m.Values[c] = make(map[string]Float, len(cols))
	}
	for i, a := range cols {
		for j := i; j < len(cols); j++ {
			b := cols[j]
			r := Pearson(data[a], data[b])
			m.Values[a][b] = Float(r)
			m.Values[b][a] = Float(r)
		}
	}
	return m
}

// TestCorrelation restricts both variables to their common non-missing
// rows, computes Pearson r, and derives a two-tailed p-value from the
// t distribution with n-2 degrees of freedom. Significance is p < 0.05.
func TestCorrelation(x, y []float64) CorrelationTest {
	cx, cy := completePairs(x, y)
	n := len(cx)
	if n < 3 {
		return CorrelationTest{R: Float(math.NaN()), PValue: Float(math.NaN()), N: n}
	}
	r := stat.Correlation(cx, cy, nil)
	if math.IsNaN(r) {
		return CorrelationTest{R: Float(r), PValue: Float(math.NaN()), N: n}
	}
	var p float64
	if 1-r*r <= 0 {
		p = 0
	} else {
		t := r * math.Sqrt(float64(n-2)/(1-r*r))
		p = studentTPValue(t, float64(n-2))
	}
	return CorrelationTest{R: Float(r), PValue: Float(p), N: n, Significant: p < 0.05}
}
