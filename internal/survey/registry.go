package survey

// Factor is a named construct measured by one or two Likert item columns.
type Factor struct {
	Name  string
	Items []string
}

// Dimension is a higher-level construct aggregated from factor scores.
type Dimension struct {
	Name    string
	Factors []string
}

// Registry is the fixed column contract for a survey dataset: identifier
// columns, Likert items grouped into factors, dimension groupings, and
// numeric outcome columns. It is passed explicitly into the scorer and the
// reliability analyzer so tests can substitute alternate registries.
type Registry struct {
	Required   []string
	Factors    []Factor
	Dimensions []Dimension
	Numeric    []string
}

// LikertColumns returns every Likert item column in factor order.
func (r *Registry) LikertColumns() []string {
	cols := make([]string, 0, 2*len(r.Factors))
	for _, f := range r.Factors {
		cols = append(cols, f.Items...)
	}
	return cols
}

// FactorByName looks up a factor definition.
func (r *Registry) FactorByName(name string) (Factor, bool) {
	for _, f := range r.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}

// OverallComponents returns the five top-level score columns that make up
// the overall framework score.
func (r *Registry) OverallComponents() []string {
	cols := make([]string, 0, len(r.Dimensions)+1)
	for _, d := range r.Dimensions {
		cols = append(cols, d.Name+ScoreSuffix)
	}
	cols = append(cols, "instructor_support"+ScoreSuffix)
	return cols
}

// DefaultRegistry returns the e-learning evaluation framework registry:
// ten factors, four dimensions, one achievement outcome.
func DefaultRegistry() *Registry {
	return &Registry{
		Required: []string{"respondent_id", "timestamp"},
		Factors: []Factor{
			{Name: "content_quality", Items: []string{"content_quality_q1", "content_quality_q2"}},
			{Name: "ui_usability", Items: []string{"ui_usability_q1", "ui_usability_q2"}},
			{Name: "teacher_student_interaction", Items: []string{"teacher_student_q1", "teacher_student_q2"}},
			{Name: "peer_interaction", Items: []string{"peer_q1", "peer_q2"}},
			{Name: "motivation", Items: []string{"motivation_q1", "motivation_q2"}},
			{Name: "autonomy", Items: []string{"autonomy_q1", "autonomy_q2"}},
			{Name: "accessibility", Items: []string{"accessibility_q1"}},
			{Name: "reliability", Items: []string{"reliability_q1"}},
			{Name: "instructor_support", Items: []string{"instructor_support_q1", "instructor_support_q2"}},
			{Name: "satisfaction", Items: []string{"satisfaction_q1", "satisfaction_q2"}},
		},
		Dimensions: []Dimension{
			{Name: "platform_design", Factors: []string{"content_quality", "ui_usability"}},
			{Name: "interaction", Factors: []string{"teacher_student_interaction", "peer_interaction"}},
			{Name: "engagement", Factors: []string{"motivation", "autonomy"}},
			{Name: "technical", Factors: []string{"accessibility", "reliability"}},
		},
		Numeric: []string{"achievement_score"},
	}
}
