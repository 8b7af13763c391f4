package analysis

import (
	"sort"

	"github.com/edugradeai/edugrade/internal/stats"
	"github.com/edugradeai/edugrade/internal/survey"
)

// RankedScore is one score column with its mean over all respondents.
type RankedScore struct {
	Name  string      `json:"name"`
	Score stats.Float `json:"score"`
}

// Insights carries the top-3 and bottom-3 mean-ranked score columns for
// narrative report generation.
type Insights struct {
	Strengths    []RankedScore `json:"strengths"`
	Improvements []RankedScore `json:"improvements"`
}

// RankScores orders the score columns by mean (descending) and returns the
// head and tail three. Columns whose mean is undefined are excluded.
func RankScores(scores *survey.Frame) Insights {
	type entry struct {
		name string
		mean float64
	}
	entries := make([]entry, 0)
	for _, col := range scores.ScoreColumns() {
		vals, _ := scores.Numeric(col)
		clean := stats.DropNaN(vals)
		if len(clean) == 0 {
			continue
		}
		sum := 0.0
		for _, v := range clean {
			sum += v
		}
		entries = append(entries, entry{name: col, mean: sum / float64(len(clean))})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].mean > entries[j].mean })

	take := func(es []entry) []RankedScore {
		out := make([]RankedScore, 0, len(es))
		for _, e := range es {
			out = append(out, RankedScore{Name: e.name, Score: stats.Float(e.mean)})
		}
		return out
	}
	top := 3
	if len(entries) < top {
		top = len(entries)
	}
	lo := len(entries) - 3
	if lo < 0 {
		lo = 0
	}
	return Insights{
		Strengths:    take(entries[:top]),
		Improvements: take(entries[lo:]),
	}
}
