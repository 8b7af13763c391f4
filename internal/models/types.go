package models

import "time"

// Evaluation is one rubric-based app review: five 1-5 ratings plus
// free-text context, with the derived 0-100 quality score.
type Evaluation struct {
	ID                    string    `json:"id"`
	AppName               string    `json:"app_name"`
	Audience              string    `json:"audience,omitempty"`
	Summary               string    `json:"summary,omitempty"`
	PedagogicalDesign     int       `json:"pedagogical_design"`
	UIUX                  int       `json:"ui_ux"`
	Engagement            int       `json:"engagement"`
	TechnicalPerformance  int       `json:"technical_performance"`
	LearningEffectiveness int       `json:"learning_effectiveness"`
	QualityScore          float64   `json:"quality_score"`
	CreatedAt             time.Time `json:"created_at"`
}
