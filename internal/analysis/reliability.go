package analysis

import (
	"math"

	"github.com/edugradeai/edugrade/internal/stats"
	"github.com/edugradeai/edugrade/internal/survey"
)

// TooFewItems flags factors that cannot carry an alpha at all.
const TooFewItems = "Too few items"

// ReliabilityRow is one factor's internal-consistency result.
type ReliabilityRow struct {
	Factor         string      `json:"factor"`
	Alpha          stats.Float `json:"cronbach_alpha"`
	NItems         int         `json:"n_items"`
	Interpretation string      `json:"interpretation"`
}

// ComputeReliability computes Cronbach's alpha for every registry factor
// against the raw item columns. Unlike the scorer, which averages the
// present items within a row, reliability is complete-case: any row
// missing one of the factor's items is dropped for that factor.
func ComputeReliability(f *survey.Frame, reg *survey.Registry) []ReliabilityRow {
	rows := make([]ReliabilityRow, 0, len(reg.Factors))
	for _, factor := range reg.Factors {
		available := make([][]float64, 0, len(factor.Items))
		names := make([]string, 0, len(factor.Items))
		for _, item := range factor.Items {
			if col, ok := f.Numeric(item); ok {
				available = append(available, col)
				names = append(names, item)
			}
		}
		if len(available) < 2 {
			rows = append(rows, ReliabilityRow{
				Factor:         factor.Name,
				Alpha:          stats.Float(math.NaN()),
				NItems:         len(available),
				Interpretation: TooFewItems,
			})
			continue
		}
		matrix := completeCaseMatrix(available, f.Len())
		alpha := stats.CronbachAlpha(matrix)
		rows = append(rows, ReliabilityRow{
			Factor:         factor.Name,
			Alpha:          stats.Float(alpha),
			NItems:         len(names),
			Interpretation: stats.AlphaLabel(alpha),
		})
	}
	return rows
}

func completeCaseMatrix(cols [][]float64, n int) [][]float64 {
	matrix := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(cols))
		complete := true
		for j, col := range cols {
			if math.IsNaN(col[i]) {
				complete = false
				break
			}
			row[j] = col[i]
		}
		if complete {
			matrix = append(matrix, row)
		}
	}
	return matrix
}
