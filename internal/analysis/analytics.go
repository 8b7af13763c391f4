package analysis

import (
	"math"

	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/stats"
	"github.com/edugradeai/edugrade/internal/survey"
)

// Summary aggregates dataset-level facts for the narrative report.
type Summary struct {
	TotalRespondents int         `json:"total_respondents"`
	ImputedColumns   []string    `json:"imputed_columns"`
	MissingColumns   []string    `json:"missing_columns"`
	OverallMean      stats.Float `json:"overall_mean"`
	OverallStdDev    stats.Float `json:"overall_std_dev"`
}

// Result is the full structured analytics output, suitable for JSON
// serialization.
type Result struct {
	Summary          Summary                      `json:"summary"`
	DescriptiveStats map[string]stats.Descriptive `json:"descriptive_stats"`
	Reliability      []ReliabilityRow             `json:"reliability"`
	Correlations     stats.Matrix                 `json:"correlations"`
	PathAnalysis     []PathResult                 `json:"path_analysis"`
	Insights         Insights                     `json:"insights"`
	ScoresPreview    []map[string]float64         `json:"scores_preview"`
}

// Pipeline runs the full analytics pass over one uploaded dataset. Each
// run works on fresh copies; pipelines hold no per-run state and are safe
// to reuse.
type Pipeline struct {
	reg        *survey.Registry
	threshold  float64
	hypotheses []Hypothesis
	log        *zap.Logger
}

func NewPipeline(reg *survey.Registry, threshold float64, log *zap.Logger) *Pipeline {
	if threshold <= 0 {
		threshold = survey.DefaultImputeThreshold
	}
	return &Pipeline{reg: reg, threshold: threshold, hypotheses: DefaultHypotheses(), log: log}
}

// Run is the lenient web-upload entry point: absent Likert columns are
// substituted with the minimum value 1 instead of rejecting the dataset.
func (p *Pipeline) Run(csvData []byte) (*Result, error) {
	res, _, _, err := p.run(csvData, nil)
	return res, err
}

// RunWithWeights is Run with caller-supplied overall weights. Weights are
// applied as given; web callers normalize first via survey.NormalizeWeights.
func (p *Pipeline) RunWithWeights(csvData []byte, weights map[string]float64) (*Result, *survey.Frame, *survey.Frame, error) {
	return p.run(csvData, weights)
}

func (p *Pipeline) run(csvData []byte, weights map[string]float64) (*Result, *survey.Frame, *survey.Frame, error) {
	raw, err := survey.ParseCSV(csvData, p.reg)
	if err != nil {
		return nil, nil, nil, err
	}

	// Lenient schema policy: report what is absent, fill Likert columns
	// with the scale minimum, and continue.
	var filled []string
	if ok, errs := survey.ValidateSchema(raw, p.reg); !ok {
		for _, e := range errs {
			p.log.Warn("schema issue tolerated", zap.String("error", e))
		}
	}
	raw = raw.Clone()
	for _, col := range p.reg.LikertColumns() {
		if !raw.HasColumn(col) {
			raw.SetConstant(col, survey.LikertMin)
			filled = append(filled, col)
		}
	}
	var absentNumeric []string
	for _, col := range p.reg.Numeric {
		if !raw.HasColumn(col) {
			absentNumeric = append(absentNumeric, col)
		}
	}

	imp := survey.ImputeMissing(raw, p.reg, p.threshold, p.log)
	frame := imp.Frame

	scorer := survey.NewScorer(p.reg)
	scores := scorer.ComputeScores(frame, weights)

	scoreCols := scores.ScoreColumns()
	data := scores.NumericData(scoreCols)

	descriptive := make(map[string]stats.Descriptive, len(scoreCols))
	for _, col := range scoreCols {
		descriptive[col] = stats.Describe(data[col])
	}

	result := &Result{
		Summary:          p.buildSummary(frame, scores, imp, filled, absentNumeric),
		DescriptiveStats: descriptive,
		Reliability:      ComputeReliability(frame, p.reg),
		Correlations:     stats.PearsonMatrix(scoreCols, data),
		PathAnalysis:     RunPathAnalysis(data, p.hypotheses, p.log),
		Insights:         RankScores(scores),
		ScoresPreview:    previewRows(scores, 5),
	}
	p.log.Info("analytics run complete",
		zap.Int("respondents", frame.Len()),
		zap.Int("score_columns", len(scoreCols)),
		zap.Int("hypotheses_evaluated", len(result.PathAnalysis)))
	return result, frame, scores, nil
}

func (p *Pipeline) buildSummary(frame, scores *survey.Frame, imp survey.ImputationResult, filled, absentNumeric []string) Summary {
	imputed := append([]string{}, filled...)
	for _, ic := range imp.Imputed {
		imputed = append(imputed, ic.Column)
	}
	missing := append([]string{}, imp.StillMissing...)
	missing = append(missing, absentNumeric...)

	// Overall level: the row-wise mean across all score columns.
	rowMeans := make([]float64, scores.Len())
	cols := scores.ScoreColumns()
	for i := range rowMeans {
		sum, count := 0.0, 0
		for _, col := range cols {
			vals, _ := scores.Numeric(col)
			if !math.IsNaN(vals[i]) {
				sum += vals[i]
				count++
			}
		}
		if count == 0 {
			rowMeans[i] = math.NaN()
		} else {
			rowMeans[i] = sum / float64(count)
		}
	}
	overall := stats.Describe(rowMeans)
	return Summary{
		TotalRespondents: frame.Len(),
		ImputedColumns:   imputed,
		MissingColumns:   missing,
		OverallMean:      overall.Mean,
		OverallStdDev:    overall.StdDev,
	}
}

// previewRows returns the first n score rows, with NaN cells rendered as 0
// for display payloads.
func previewRows(scores *survey.Frame, n int) []map[string]float64 {
	if n > scores.Len() {
		n = scores.Len()
	}
	cols := scores.ScoreColumns()
	rows := make([]map[string]float64, 0, n)
	for i := 0; i < n; i++ {
		row := make(map[string]float64, len(cols))
		for _, col := range cols {
			vals, _ := scores.Numeric(col)
			v := vals[i]
			if math.IsNaN(v) {
				v = 0
			}
			row[col] = v
		}
		rows = append(rows, row)
	}
	return rows
}
