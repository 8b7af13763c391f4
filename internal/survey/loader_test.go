package survey

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// smallRegistry keeps schema tests readable.
func smallRegistry() *Registry {
	return &Registry{
		Required: []string{"respondent_id", "timestamp"},
		Factors: []Factor{
			{Name: "content_quality", Items: []string{"content_quality_q1", "content_quality_q2"}},
			{Name: "ui_usability", Items: []string{"ui_usability_q1"}},
		},
		Dimensions: []Dimension{
			{Name: "platform_design", Factors: []string{"content_quality", "ui_usability"}},
		},
		Numeric: []string{"achievement_score"},
	}
}

func TestValidateSchema_OrderedErrors(t *testing.T) {
	reg := smallRegistry()
	f := NewFrame(2)
	require.NoError(t, f.SetText("respondent_id", []string{"a", "b"}))
	require.NoError(t, f.SetNumeric("content_quality_q1", []float64{1, 2}))

	ok, errs := ValidateSchema(f, reg)
	assert.False(t, ok)
	assert.Equal(t, []string{
		"Missing required column: timestamp",
		"Missing Likert column: content_quality_q2",
		"Missing Likert column: ui_usability_q1",
		"Missing numeric column: achievement_score",
	}, errs)
}

func TestParseCSV_TypesAndMissing(t *testing.T) {
	csv := "respondent_id,timestamp,content_quality_q1,content_quality_q2,ui_usability_q1,achievement_score\n" +
		"R001,2024-01-01,5,4,3,90\n" +
		"R002,2024-01-02,,4,not-a-number,80\n"
	f, err := ParseCSV([]byte(csv), smallRegistry())
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())

	ids, ok := f.Text("respondent_id")
	require.True(t, ok)
	assert.Equal(t, []string{"R001", "R002"}, ids)

	q1, _ := f.Numeric("content_quality_q1")
	assert.Equal(t, 5.0, q1[0])
	assert.True(t, math.IsNaN(q1[1]))

	ui, _ := f.Numeric("ui_usability_q1")
	assert.True(t, math.IsNaN(ui[1]))
}

func TestLoadCSV_StrictRejectsMissingColumns(t *testing.T) {
	csv := "respondent_id,timestamp,content_quality_q1\nR001,2024-01-01,5\n"
	_, _, err := LoadCSV([]byte(csv), smallRegistry(), DefaultImputeThreshold, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, err.Error(), "Missing Likert column: content_quality_q2")
}

func TestLoadCSV_StrictImputes(t *testing.T) {
	var b strings.Builder
	b.WriteString("respondent_id,timestamp,content_quality_q1,content_quality_q2,ui_usability_q1,achievement_score\n")
	rows := []string{"5", "4", "3", "", "5", "4", "3", "5", "4", "3"}
	for i, v := range rows {
		b.WriteString("R")
		b.WriteString(string(rune('a' + i)))
		b.WriteString(",2024-01-01," + "3,3," + v + ",70\n")
	}
	f, res, err := LoadCSV([]byte(b.String()), smallRegistry(), DefaultImputeThreshold, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res.Imputed, 1)
	assert.Equal(t, "ui_usability_q1", res.Imputed[0].Column)
	assert.Equal(t, 0, f.MissingCount("ui_usability_q1"))
}

func TestOutOfRangeCounts(t *testing.T) {
	reg := smallRegistry()
	f := NewFrame(3)
	require.NoError(t, f.SetNumeric("content_quality_q1", []float64{0, 6, 3}))
	require.NoError(t, f.SetNumeric("content_quality_q2", []float64{1, 5, math.NaN()}))
	counts := OutOfRangeCounts(f, reg)
	assert.Equal(t, map[string]int{"content_quality_q1": 2}, counts)
}

func TestExportCSV_RoundTrip(t *testing.T) {
	f := NewFrame(2)
	require.NoError(t, f.SetText("respondent_id", []string{"R001", "R002"}))
	require.NoError(t, f.SetNumeric("content_quality_score", []float64{100, math.NaN()}))

	out, err := ExportCSV(f)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, "respondent_id,content_quality_score", lines[0])
	assert.Equal(t, "R001,100", lines[1])
	assert.Equal(t, "R002,", lines[2])
}
