package survey

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// ImputedColumn records one mean-imputed column.
type ImputedColumn struct {
	Column          string  `json:"column"`
	MissingFraction float64 `json:"missing_fraction"`
	FillValue       float64 `json:"fill_value"`
}

// ImputationResult is the outcome of the missing-data pass: a new frame
// (the input is never touched) plus the imputed and still-missing column
// lists.
type ImputationResult struct {
	Frame        *Frame
	Imputed      []ImputedColumn
	StillMissing []string
}

// ImputeMissing fills missing cells with the column mean when the missing
// fraction is below threshold, and leaves the column untouched (with a
// warning) otherwise. The decision is per-column and independent; no
// cross-column information is used.
func ImputeMissing(f *Frame, reg *Registry, threshold float64, log *zap.Logger) ImputationResult {
	out := ImputationResult{Frame: f.Clone()}
	if f.Len() == 0 {
		return out
	}
	cols := append(reg.LikertColumns(), reg.Numeric...)
	for _, col := range cols {
		vals, ok := out.Frame.Numeric(col)
		if !ok {
			continue
		}
		miss := out.Frame.MissingCount(col)
		if miss == 0 {
			continue
		}
		frac := float64(miss) / float64(f.Len())
		if frac >= threshold {
			out.StillMissing = append(out.StillMissing, col)
			log.Warn("missing rate at or above threshold, column left as-is",
				zap.String("column", col),
				zap.Float64("missing_fraction", frac),
				zap.Float64("threshold", threshold))
			continue
		}
		present := make([]float64, 0, len(vals)-miss)
		for _, v := range vals {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}
		mean := stat.Mean(present, nil)
		filled := make([]float64, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				filled[i] = mean
			} else {
				filled[i] = v
			}
		}
		_ = out.Frame.SetNumeric(col, filled)
		out.Imputed = append(out.Imputed, ImputedColumn{Column: col, MissingFraction: frac, FillValue: mean})
		log.Info("imputed missing values",
			zap.String("column", col),
			zap.Float64("missing_fraction", frac),
			zap.Float64("fill_value", mean))
	}
	return out
}
