package survey

import "math"

const (
	// LikertMin and LikertMax bound the ordinal response scale.
	LikertMin = 1
	LikertMax = 5
)

// LikertToScore maps a Likert mean in [1,5] onto the 0-100 scale:
// 1 -> 0, 3 -> 50, 5 -> 100.
func LikertToScore(mean float64) float64 {
	return (mean - LikertMin) / (LikertMax - LikertMin) * 100
}

// Scorer converts raw Likert items into normalized factor, dimension, and
// overall scores according to its registry.
type Scorer struct {
	reg *Registry
}

func NewScorer(reg *Registry) *Scorer {
	return &Scorer{reg: reg}
}

// NormalizeWeights rescales weights to sum to 1. A non-positive total falls
// back to equal weights. This is the web layer's entry point; ComputeScores
// itself applies whatever weights it receives, unnormalized.
func NormalizeWeights(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		for k := range weights {
			out[k] = 1 / float64(len(weights))
		}
		return out
	}
	for k, w := range weights {
		out[k] = w / total
	}
	return out
}

// DefaultWeights returns equal weights over the five top-level score
// columns.
func (s *Scorer) DefaultWeights() map[string]float64 {
	comps := s.reg.OverallComponents()
	w := make(map[string]float64, len(comps))
	for _, c := range comps {
		w[c] = 1 / float64(len(comps))
	}
	return w
}

// ComputeScores derives the score table from a validated survey frame:
// one factor score column per registry factor, the achievement passthrough,
// dimension scores, and the weighted overall framework score. The input
// frame is not modified.
//
// Row-wise semantics: a factor score is the mean of that row's present
// items (NaN only if all items are missing); a dimension score is the mean
// of its non-NaN factor scores; the overall score is a plain weighted sum
// and propagates NaN from any weighted component.
func (s *Scorer) ComputeScores(f *Frame, weights map[string]float64) *Frame {
	n := f.Len()
	scores := NewFrame(n)
	if ids, ok := f.Text("respondent_id"); ok {
		cp := make([]string, len(ids))
		copy(cp, ids)
		_ = scores.SetText("respondent_id", cp)
	}

	for _, factor := range s.reg.Factors {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = s.factorScoreAt(f, factor, i)
		}
		_ = scores.SetNumeric(factor.Name+ScoreSuffix, col)
	}

	// Achievement is already on the 0-100 scale and passes through raw.
	if ach, ok := f.Numeric("achievement_score"); ok {
		cp := make([]float64, len(ach))
		copy(cp, ach)
		_ = scores.SetNumeric("achievement_score", cp)
	}

	for _, dim := range s.reg.Dimensions {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = dimensionScoreAt(scores, dim, i)
		}
		_ = scores.SetNumeric(dim.Name+ScoreSuffix, col)
	}

	if weights == nil {
		weights = s.DefaultWeights()
	}
	if s.weightedColumnsPresent(scores, weights) {
		overall := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := 0.0
			for col, w := range weights {
				vals, _ := scores.Numeric(col)
				sum += vals[i] * w
			}
			overall[i] = sum
		}
		_ = scores.SetNumeric("overall_framework"+ScoreSuffix, overall)
	}
	return scores
}

func (s *Scorer) factorScoreAt(f *Frame, factor Factor, row int) float64 {
	sum := 0.0
	count := 0
	for _, item := range factor.Items {
		vals, ok := f.Numeric(item)
		if !ok {
			continue
		}
		v := vals[row]
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return LikertToScore(sum / float64(count))
}

func dimensionScoreAt(scores *Frame, dim Dimension, row int) float64 {
	sum := 0.0
	count := 0
	for _, factor := range dim.Factors {
		vals, ok := scores.Numeric(factor + ScoreSuffix)
		if !ok {
			continue
		}
		v := vals[row]
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

func (s *Scorer) weightedColumnsPresent(scores *Frame, weights map[string]float64) bool {
	for col := range weights {
		if !scores.HasColumn(col) {
			return false
		}
	}
	return len(weights) > 0
}
