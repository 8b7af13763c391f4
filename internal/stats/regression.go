package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinRegressionRows is the minimum number of complete-case rows for an OLS
// fit to be considered defined.
const MinRegressionRows = 5

// RegressionResult holds an ordinary-least-squares fit of one outcome on a
// set of predictors. Undefined marks degenerate fits (too few rows, no
// residual degrees of freedom, zero outcome variance, singular design);
// degeneracies never surface as errors.
type RegressionResult struct {
	Outcome         string           `json:"outcome"`
	Predictors      []string         `json:"predictors"`
	N               int              `json:"n"`
	RSquared        Float            `json:"r_squared"`
	AdjRSquared     Float            `json:"adj_r_squared"`
	FStatistic      Float            `json:"f_statistic"`
	FPValue         Float            `json:"f_pvalue"`
	Coefficients    map[string]Float `json:"coefficients"`
	PValues         map[string]Float `json:"p_values"`
	Intercept       Float            `json:"intercept"`
	InterceptPValue Float            `json:"intercept_p_value"`
	Undefined       bool             `json:"undefined,omitempty"`
}

func undefinedRegression(outcome string, predictors []string, n int) RegressionResult {
	nan := Float(math.NaN())
	return RegressionResult{
		Outcome:    outcome,
		Predictors: predictors,
		N:          n,
		RSquared:   nan, AdjRSquared: nan, FStatistic: nan, FPValue: nan,
		Intercept: nan, InterceptPValue: nan,
		Undefined: true,
	}
}

// completeRows returns the indices where every listed column is present.
func completeRows(cols []string, data map[string][]float64) []int {
	first, ok := data[cols[0]]
	if !ok {
		return nil
	}
	idx := make([]int, 0, len(first))
rows:
	for i := range first {
		for _, c := range cols {
			v, ok := data[c]
			if !ok || i >= len(v) || math.IsNaN(v[i]) {
				continue rows
			}
		}
		idx = append(idx, i)
	}
	return idx
}

// OLS fits outcome ~ predictors with an intercept on complete-case rows.
func OLS(outcome string, predictors []string, data map[string][]float64) RegressionResult {
	cols := append([]string{outcome}, predictors...)
	rows := completeRows(cols, data)
	n := len(rows)
	p := len(predictors)
	df := n - p - 1
	if n < MinRegressionRows || df < 1 {
		return undefinedRegression(outcome, predictors, n)
	}

	x := mat.NewDense(n, p+1, nil)
	y := mat.NewDense(n, 1, nil)
	for i, ri := range rows {
		x.Set(i, 0, 1)
		for j, pred := range predictors {
			x.Set(i, j+1, data[pred][ri])
		}
		y.Set(i, 0, data[outcome][ri])
	}

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return undefinedRegression(outcome, predictors, n)
	}

	// Residual and total sums of squares.
	var fitted mat.Dense
	fitted.Mul(x, &beta)
	ssRes := 0.0
	yMean := 0.0
	for i := 0; i < n; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(n)
	ssTot := 0.0
	for i := 0; i < n; i++ {
		r := y.At(i, 0) - fitted.At(i, 0)
		ssRes += r * r
		d := y.At(i, 0) - yMean
		ssTot += d * d
	}
	if ssTot == 0 {
		return undefinedRegression(outcome, predictors, n)
	}

	r2 := 1 - ssRes/ssTot
	adjR2 := 1 - (1-r2)*float64(n-1)/float64(df)
	sigma2 := ssRes / float64(df)

	// Coefficient standard errors from the diagonal of (X'X)^-1.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return undefinedRegression(outcome, predictors, n)
	}

	coefs := make(map[string]Float, p)
	pvals := make(map[string]Float, p)
	coefPValue := func(j int) float64 {
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		t := beta.At(j, 0) / se
		return studentTPValue(t, float64(df))
	}
	for j, pred := range predictors {
		coefs[pred] = Float(beta.At(j+1, 0))
		pvals[pred] = Float(coefPValue(j + 1))
	}

	fStat := math.Inf(1)
	if r2 < 1 {
		fStat = (r2 / float64(p)) / ((1 - r2) / float64(df))
	}
	fp := fPValue(fStat, float64(p), float64(df))
	if math.IsInf(fStat, 1) {
		fp = 0
	}

	return RegressionResult{
		Outcome:         outcome,
		Predictors:      predictors,
		N:               n,
		RSquared:        Float(r2),
		AdjRSquared:     Float(adjR2),
		FStatistic:      Float(fStat),
		FPValue:         Float(fp),
		Coefficients:    coefs,
		PValues:         pvals,
		Intercept:       Float(beta.At(0, 0)),
		InterceptPValue: Float(coefPValue(0)),
	}
}
