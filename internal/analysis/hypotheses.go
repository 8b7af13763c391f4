package analysis

import (
	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/stats"
)

// HypothesisKind selects the analysis a hypothesis runs.
type HypothesisKind string

const (
	KindMediation  HypothesisKind = "mediation"
	KindRegression HypothesisKind = "regression"
)

// Hypothesis is one declarative entry in the path-analysis battery. New
// hypotheses are added here, not as new code paths.
type Hypothesis struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Kind       HypothesisKind `json:"kind"`
	Outcome    string         `json:"outcome"`
	Predictors []string       `json:"predictors,omitempty"`
	// Mediation only.
	Independent string `json:"independent,omitempty"`
	Mediator    string `json:"mediator,omitempty"`
}

// requiredColumns lists every score column the hypothesis needs.
func (h Hypothesis) requiredColumns() []string {
	if h.Kind == KindMediation {
		return []string{h.Independent, h.Mediator, h.Outcome}
	}
	return append([]string{h.Outcome}, h.Predictors...)
}

// PathResult pairs a hypothesis with whichever analysis it produced.
type PathResult struct {
	Hypothesis Hypothesis              `json:"hypothesis"`
	Mediation  *stats.MediationResult  `json:"mediation,omitempty"`
	Regression *stats.RegressionResult `json:"regression,omitempty"`
}

// DefaultHypotheses is the framework's fixed battery: one mediation chain,
// three simple regressions, one multiple regression.
func DefaultHypotheses() []Hypothesis {
	return []Hypothesis{
		{
			ID:          "H1",
			Name:        "Platform Design -> Motivation -> Achievement",
			Kind:        KindMediation,
			Independent: "platform_design_score",
			Mediator:    "motivation_score",
			Outcome:     "achievement_score",
		},
		{
			ID:         "H2",
			Name:       "Interaction -> Satisfaction",
			Kind:       KindRegression,
			Outcome:    "satisfaction_score",
			Predictors: []string{"interaction_score"},
		},
		{
			ID:         "H3a",
			Name:       "Engagement -> Achievement",
			Kind:       KindRegression,
			Outcome:    "achievement_score",
			Predictors: []string{"engagement_score"},
		},
		{
			ID:         "H3b",
			Name:       "Engagement -> Satisfaction",
			Kind:       KindRegression,
			Outcome:    "satisfaction_score",
			Predictors: []string{"engagement_score"},
		},
		{
			ID:      "H4",
			Name:    "All Dimensions -> Achievement",
			Kind:    KindRegression,
			Outcome: "achievement_score",
			Predictors: []string{
				"platform_design_score",
				"interaction_score",
				"engagement_score",
				"technical_score",
				"instructor_support_score",
			},
		},
	}
}

// RunPathAnalysis evaluates the battery against the score data. A
// hypothesis whose required columns are absent is skipped silently, and a
// degenerate fit (too few complete rows) is dropped rather than reported
// as an error.
func RunPathAnalysis(data map[string][]float64, hypotheses []Hypothesis, log *zap.Logger) []PathResult {
	results := make([]PathResult, 0, len(hypotheses))
	for _, h := range hypotheses {
		if !columnsPresent(data, h.requiredColumns()) {
			log.Debug("hypothesis skipped, columns absent", zap.String("id", h.ID))
			continue
		}
		switch h.Kind {
		case KindMediation:
			res := stats.TestMediation(h.Independent, h.Mediator, h.Outcome, data)
			if res.Undefined {
				log.Debug("mediation undefined", zap.String("id", h.ID), zap.Int("n", res.N))
				continue
			}
			results = append(results, PathResult{Hypothesis: h, Mediation: &res})
			log.Info("mediation tested", zap.String("id", h.ID), zap.String("result", res.Type))
		case KindRegression:
			res := stats.OLS(h.Outcome, h.Predictors, data)
			if res.Undefined {
				log.Debug("regression undefined", zap.String("id", h.ID), zap.Int("n", res.N))
				continue
			}
			results = append(results, PathResult{Hypothesis: h, Regression: &res})
			log.Info("regression fitted",
				zap.String("id", h.ID),
				zap.Float64("r_squared", float64(res.RSquared)))
		}
	}
	return results
}

func columnsPresent(data map[string][]float64, cols []string) bool {
	for _, c := range cols {
		if _, ok := data[c]; !ok {
			return false
		}
	}
	return true
}
