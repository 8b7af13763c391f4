package analysis

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/survey"
)

// surveyCSV renders a dataset with the full default column set. Each row is
// a respondent: 18 Likert values in registry order plus an achievement score.
func surveyCSV(t *testing.T, reg *survey.Registry, likert [][]int, achievement []float64) []byte {
	t.Helper()
	cols := reg.LikertColumns()
	var b strings.Builder
	b.WriteString("respondent_id,timestamp")
	for _, c := range cols {
		b.WriteString("," + c)
	}
	b.WriteString(",achievement_score\n")
	for i, row := range likert {
		require.Len(t, row, len(cols))
		fmt.Fprintf(&b, "R%03d,2024-01-01", i+1)
		for _, v := range row {
			b.WriteString("," + strconv.Itoa(v))
		}
		fmt.Fprintf(&b, ",%g\n", achievement[i])
	}
	return []byte(b.String())
}

// uniformRow repeats one Likert value across all 18 items.
func uniformRow(reg *survey.Registry, v int) []int {
	row := make([]int, len(reg.LikertColumns()))
	for i := range row {
		row[i] = v
	}
	return row
}

func TestPipelineRun_SmallDataset(t *testing.T) {
	reg := survey.DefaultRegistry()
	p := NewPipeline(reg, survey.DefaultImputeThreshold, zap.NewNop())
	csv := surveyCSV(t, reg,
		[][]int{uniformRow(reg, 5), uniformRow(reg, 4), uniformRow(reg, 3)},
		[]float64{90, 80, 70})

	res, err := p.Run(csv)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Summary.TotalRespondents)
	assert.Empty(t, res.Summary.ImputedColumns)
	assert.Empty(t, res.Summary.MissingColumns)

	cq := res.DescriptiveStats["content_quality_score"]
	assert.Equal(t, 3, cq.N)
	assert.InDelta(t, 75.0, float64(cq.Mean), 1e-9)
	assert.Equal(t, 50.0, float64(cq.Min))
	assert.Equal(t, 100.0, float64(cq.Max))

	overall := res.DescriptiveStats["overall_framework_score"]
	assert.InDelta(t, 75.0, float64(overall.Mean), 1e-9)

	// Row means across the 16 score columns: 15 uniform score columns plus
	// the raw achievement passthrough.
	assert.InDelta(t, 75.3125, float64(res.Summary.OverallMean), 1e-9)

	// Three respondents are too few for any regression, so the whole
	// battery drops out.
	assert.Empty(t, res.PathAnalysis)

	assert.Len(t, res.ScoresPreview, 3)
	assert.Equal(t, 100.0, res.ScoresPreview[0]["content_quality_score"])
	assert.Equal(t, 90.0, res.ScoresPreview[0]["achievement_score"])

	assert.Contains(t, res.Correlations.Columns, "engagement_score")
	assert.NotEmpty(t, res.Insights.Strengths)
}

func TestPipelineRun_LenientFillsAbsentColumns(t *testing.T) {
	reg := survey.DefaultRegistry()
	p := NewPipeline(reg, survey.DefaultImputeThreshold, zap.NewNop())

	// Drop satisfaction_q2 and achievement_score from the upload entirely.
	csv := []byte("respondent_id,timestamp,content_quality_q1,content_quality_q2,ui_usability_q1,ui_usability_q2," +
		"teacher_student_q1,teacher_student_q2,peer_q1,peer_q2,motivation_q1,motivation_q2," +
		"autonomy_q1,autonomy_q2,accessibility_q1,reliability_q1,instructor_support_q1,instructor_support_q2,satisfaction_q1\n" +
		"R001,2024-01-01,3,3,3,3,3,3,3,3,3,3,3,3,3,3,3,3,3\n" +
		"R002,2024-01-02,3,3,3,3,3,3,3,3,3,3,3,3,3,3,3,3,3\n")

	res, _, scores, err := p.RunWithWeights(csv, nil)
	require.NoError(t, err)

	assert.Contains(t, res.Summary.ImputedColumns, "satisfaction_q2")
	assert.Contains(t, res.Summary.MissingColumns, "achievement_score")

	// satisfaction_q1=3 with the absent item filled at the scale minimum:
	// mean 2 on the Likert scale maps to 25.
	sat, ok := scores.Numeric("satisfaction_score")
	require.True(t, ok)
	assert.InDelta(t, 25.0, sat[0], 1e-9)

	assert.NotContains(t, scores.ScoreColumns(), "achievement_score")
}

func TestPipelineRun_HypothesisBattery(t *testing.T) {
	reg := survey.DefaultRegistry()
	p := NewPipeline(reg, survey.DefaultImputeThreshold, zap.NewNop())

	rng := rand.New(rand.NewSource(7))
	n := 40
	likert := make([][]int, n)
	achievement := make([]float64, n)
	for i := 0; i < n; i++ {
		row := make([]int, len(reg.LikertColumns()))
		for j := range row {
			row[j] = rng.Intn(5) + 1
		}
		likert[i] = row
		// Achievement tracks motivation items with a little noise.
		achievement[i] = 40 + 10*float64(row[8]+row[9])/2 + float64(rng.Intn(7))
	}

	res, err := p.Run(surveyCSV(t, reg, likert, achievement))
	require.NoError(t, err)
	require.Len(t, res.PathAnalysis, 5)

	byID := map[string]PathResult{}
	for _, pr := range res.PathAnalysis {
		byID[pr.Hypothesis.ID] = pr
	}
	med := byID["H1"]
	require.NotNil(t, med.Mediation)
	assert.Contains(t, []string{
		"Full mediation (complete)", "Partial mediation", "No mediation",
	}, med.Mediation.Type)
	assert.Nil(t, med.Regression)

	for _, id := range []string{"H2", "H3a", "H3b", "H4"} {
		pr, ok := byID[id]
		require.True(t, ok, id)
		require.NotNil(t, pr.Regression, id)
		assert.Equal(t, 40, pr.Regression.N)
	}
	assert.Len(t, byID["H4"].Regression.Coefficients, 5)
}

func TestRunPathAnalysis_SkipsAbsentColumns(t *testing.T) {
	data := map[string][]float64{
		"satisfaction_score": {1, 2, 3, 4, 5, 6},
		"interaction_score":  {2, 4, 5, 8, 10, 13},
	}
	results := RunPathAnalysis(data, DefaultHypotheses(), zap.NewNop())
	require.Len(t, results, 1)
	assert.Equal(t, "H2", results[0].Hypothesis.ID)
}
