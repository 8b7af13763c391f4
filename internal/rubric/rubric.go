// Package rubric implements the ad-hoc app evaluation form: five 1-5
// ratings are collapsed into a quality score, and stored reports derive
// coaching insights and a chart payload from the rating fields.
package rubric

import (
	"fmt"
	"math"

	"github.com/edugradeai/edugrade/internal/models"
)

// dimensionCount is the number of rubric dimensions.
const dimensionCount = 5

// dimension pairs an evaluation rating with its display label. Order
// matters: ties on best/worst resolve to the first dimension listed.
type dimension struct {
	label string
	value func(*models.Evaluation) int
}

func dimensions() []dimension {
	return []dimension{
		{"Pedagogical Design", func(e *models.Evaluation) int { return e.PedagogicalDesign }},
		{"UI & Usability", func(e *models.Evaluation) int { return e.UIUX }},
		{"Engagement", func(e *models.Evaluation) int { return e.Engagement }},
		{"Technical", func(e *models.Evaluation) int { return e.TechnicalPerformance }},
		{"Learning Impact", func(e *models.Evaluation) int { return e.LearningEffectiveness }},
	}
}

// ValidateRatings checks that every rating sits on the 1-5 scale.
func ValidateRatings(e *models.Evaluation) error {
	for _, d := range dimensions() {
		if v := d.value(e); v < 1 || v > 5 {
			return fmt.Errorf("%s rating must be between 1 and 5, got %d", d.label, v)
		}
	}
	return nil
}

// QualityScore maps the five ratings onto 0-100, rounded to two decimals:
// round(sum / (5*5) * 100, 2).
func QualityScore(e *models.Evaluation) float64 {
	sum := e.PedagogicalDesign + e.UIUX + e.Engagement + e.TechnicalPerformance + e.LearningEffectiveness
	score := float64(sum) / float64(dimensionCount*5) * 100
	return math.Round(score*100) / 100
}

// BuildInsights derives the coaching narrative: the best and worst scoring
// dimensions with templated advice, plus a tier message keyed by the
// quality score (>=80 excellent, >=60 solid, else foundational).
func BuildInsights(e *models.Evaluation) []string {
	dims := dimensions()
	best, worst := dims[0], dims[0]
	for _, d := range dims[1:] {
		if d.value(e) > best.value(e) {
			best = d
		}
		if d.value(e) < worst.value(e) {
			worst = d
		}
	}
	insights := []string{
		fmt.Sprintf("%s is resonating with learners (score %d/5). Consider showcasing successful flows to stakeholders.", best.label, best.value(e)),
		fmt.Sprintf("%s needs immediate experimentation (score %d/5). Co-create improvements with 3 target users this week.", worst.label, worst.value(e)),
	}
	switch {
	case e.QualityScore >= 80:
		insights = append(insights, "Overall quality is excellent. Focus on scaling adoption and measuring learning outcomes.")
	case e.QualityScore >= 60:
		insights = append(insights, "Quality is solid but inconsistent. Prioritize guardrails to lift the weakest dimension.")
	default:
		insights = append(insights, "Foundational work required. Align team on success metrics and rebuild critical journeys.")
	}
	return insights
}

// ChartData is the label -> value payload the report page renders.
type ChartData struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// ChartPayload maps the five rating fields to their chart labels.
func ChartPayload(e *models.Evaluation) ChartData {
	return ChartData{
		Labels: []string{"Pedagogy", "UI/UX", "Engagement", "Technical", "Learning"},
		Data: []int{
			e.PedagogicalDesign,
			e.UIUX,
			e.Engagement,
			e.TechnicalPerformance,
			e.LearningEffectiveness,
		},
	}
}
