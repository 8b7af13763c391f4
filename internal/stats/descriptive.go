package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Descriptive summarizes one variable on whatever scale it arrives in.
// The confidence interval uses the Student-t critical value at 95%.
type Descriptive struct {
	N      int   `json:"n"`
	Mean   Float `json:"mean"`
	StdDev Float `json:"std_dev"`
	Min    Float `json:"min"`
	Max    Float `json:"max"`
	CILow  Float `json:"ci_low"`
	CIHigh Float `json:"ci_high"`
}

// DropNaN returns the non-missing values of xs.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Describe computes descriptive statistics over the non-missing values.
// With fewer than two observations the spread and interval collapse onto
// the mean rather than erroring.
func Describe(xs []float64) Descriptive {
	clean := DropNaN(xs)
	n := len(clean)
	if n == 0 {
		nan := Float(math.NaN())
		return Descriptive{Mean: nan, StdDev: nan, Min: nan, Max: nan, CILow: nan, CIHigh: nan}
	}
	mean := stat.Mean(clean, nil)
	min, max := clean[0], clean[0]
	for _, v := range clean[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if n == 1 {
		return Descriptive{N: 1, Mean: Float(mean), StdDev: 0, Min: Float(min), Max: Float(max), CILow: Float(mean), CIHigh: Float(mean)}
	}
	sd := math.Sqrt(stat.Variance(clean, nil))
	sem := sd / math.Sqrt(float64(n))
	tcrit := tCritical95(float64(n - 1))
	return Descriptive{
		N:      n,
		Mean:   Float(mean),
		StdDev: Float(sd),
		Min:    Float(min),
		Max:    Float(max),
		CILow:  Float(mean - tcrit*sem),
		CIHigh: Float(mean + tcrit*sem),
	}
}

func tCritical95(df float64) float64 {
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return t.Quantile(0.975)
}

// studentTPValue returns the two-tailed p-value for a t statistic.
func studentTPValue(t, df float64) float64 {
	if math.IsNaN(t) || df <= 0 {
		return math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(math.Abs(t))
}

// fPValue returns the upper-tail p-value for an F statistic.
func fPValue(f, d1, d2 float64) float64 {
	if math.IsNaN(f) || d1 <= 0 || d2 <= 0 {
		return math.NaN()
	}
	dist := distuv.F{D1: d1, D2: d2}
	return dist.Survival(f)
}
