package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/edugradeai/edugrade/internal/stats"
	"github.com/edugradeai/edugrade/internal/survey"
)

const reportRule = "======================================================================"
const sectionRule = "----------------------------------------------------------------------"

// keyCorrelationPairs are the five named factor relationships reported with
// a significance test. A pair is skipped when either column is absent.
var keyCorrelationPairs = []struct {
	a, b, label string
}{
	{"platform_design_score", "motivation_score", "Platform Design <-> Motivation"},
	{"interaction_score", "satisfaction_score", "Interaction <-> Satisfaction"},
	{"motivation_score", "achievement_score", "Motivation <-> Achievement"},
	{"engagement_score", "achievement_score", "Engagement <-> Achievement"},
	{"engagement_score", "satisfaction_score", "Engagement <-> Satisfaction"},
}

// GenerateAnalysisReport renders the multi-section plain-text report:
// reliability, descriptive statistics with 95% confidence intervals, and
// the five key correlation tests. It performs no new statistics beyond
// interval construction.
func GenerateAnalysisReport(raw, scores *survey.Frame, reg *survey.Registry) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(reportRule)
	line("     EDUCATIONAL PLATFORM QUALITY FRAMEWORK - ANALYSIS REPORT")
	line(reportRule)
	line("")
	line("Sample Size: %d respondents", scores.Len())
	line("")

	line("RELIABILITY ANALYSIS (Cronbach's Alpha)")
	line(sectionRule)
	for _, row := range ComputeReliability(raw, reg) {
		if math.IsNaN(float64(row.Alpha)) {
			line("  %-35s %s", row.Factor, row.Interpretation)
			continue
		}
		line("  %-35s alpha = %.3f (%s, n=%d items)", row.Factor, float64(row.Alpha), row.Interpretation, row.NItems)
	}
	line("")

	line("DESCRIPTIVE STATISTICS (0-100 scale)")
	line(sectionRule)
	for _, col := range scores.ScoreColumns() {
		vals, _ := scores.Numeric(col)
		d := stats.Describe(vals)
		name := titleCase(strings.TrimSuffix(col, survey.ScoreSuffix))
		line("  %-35s M=%6.2f  SD=%6.2f  95%%CI=[%6.2f, %6.2f]",
			name, float64(d.Mean), float64(d.StdDev), float64(d.CILow), float64(d.CIHigh))
	}
	line("")

	line("KEY CORRELATIONS")
	line(sectionRule)
	for _, pair := range keyCorrelationPairs {
		x, okX := scores.Numeric(pair.a)
		y, okY := scores.Numeric(pair.b)
		if !okX || !okY {
			continue
		}
		res := stats.TestCorrelation(x, y)
		marker := ""
		if res.Significant {
			marker = " **"
		}
		line("  %-40s r=%6.3f  (p=%.4f)%s", pair.label, float64(res.R), float64(res.PValue), marker)
	}
	line("")
	line("  ** Significant at p < 0.05")
	line("")
	line(reportRule)
	return b.String()
}

// titleCase turns a snake_case column name into a display label.
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// GeneratePathReport renders the path-analysis and regression section.
func GeneratePathReport(results []PathResult) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("")
	line(reportRule)
	line("     PATH ANALYSIS & REGRESSION RESULTS")
	line(reportRule)
	for _, res := range results {
		line("")
		line("%s: %s", res.Hypothesis.ID, res.Hypothesis.Name)
		line(sectionRule)
		if m := res.Mediation; m != nil {
			line("  Total Effect (c):     %7.3f  (p=%.4f)", float64(m.TotalEffect), float64(m.CPValue))
			line("  Direct Effect (c'):   %7.3f  (p=%.4f)", float64(m.DirectEffect), float64(m.CPrimePValue))
			line("  Indirect Effect:      %7.3f", float64(m.IndirectEffect))
			line("  Result: %s", m.Type)
		}
		if r := res.Regression; r != nil {
			line("  R-squared = %.3f (adjusted %.3f)", float64(r.RSquared), float64(r.AdjRSquared))
			line("  F-statistic = %.3f, p = %.4f", float64(r.FStatistic), float64(r.FPValue))
		}
	}
	line("")
	line(reportRule)
	return b.String()
}
