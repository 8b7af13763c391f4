package stats

import "math"

// Mediation classification labels, in the order the rule is applied.
const (
	MediationFull    = "Full mediation (complete)"
	MediationPartial = "Partial mediation"
	MediationNone    = "No mediation"
)

// MediationResult is a Baron-Kenny mediation test of
// independent -> mediator -> dependent, built from three OLS fits on the
// shared complete-case rows:
//
//	dependent ~ independent               (total effect c)
//	mediator  ~ independent               (path a)
//	dependent ~ independent + mediator    (direct effect c', path b)
type MediationResult struct {
	Independent    string `json:"independent"`
	Mediator       string `json:"mediator"`
	Dependent      string `json:"dependent"`
	N              int    `json:"n"`
	TotalEffect    Float  `json:"total_effect"`
	DirectEffect   Float  `json:"direct_effect"`
	IndirectEffect Float  `json:"indirect_effect"`
	APath          Float  `json:"a_path"`
	BPath          Float  `json:"b_path"`
	APValue        Float  `json:"a_pvalue"`
	BPValue        Float  `json:"b_pvalue"`
	CPValue        Float  `json:"c_pvalue"`
	CPrimePValue   Float  `json:"c_prime_pvalue"`
	Type           string `json:"mediation_type"`
	Undefined      bool   `json:"undefined,omitempty"`
}

// TestMediation runs the simplified Baron-Kenny procedure. No Sobel test
// or bootstrap; the |c'| < |c| magnitude comparison applies only in the
// partial-mediation branch. The classification order is deliberate and
// must not be reordered.
func TestMediation(independent, mediator, dependent string, data map[string][]float64) MediationResult {
	rows := completeRows([]string{independent, mediator, dependent}, data)
	filtered := map[string][]float64{
		independent: takeRows(data[independent], rows),
		mediator:    takeRows(data[mediator], rows),
		dependent:   takeRows(data[dependent], rows),
	}

	total := OLS(dependent, []string{independent}, filtered)
	aModel := OLS(mediator, []string{independent}, filtered)
	direct := OLS(dependent, []string{independent, mediator}, filtered)
	if total.Undefined || aModel.Undefined || direct.Undefined {
		nan := Float(math.NaN())
		return MediationResult{
			Independent: independent, Mediator: mediator, Dependent: dependent,
			N:           len(rows),
			TotalEffect: nan, DirectEffect: nan, IndirectEffect: nan,
			APath: nan, BPath: nan,
			APValue: nan, BPValue: nan, CPValue: nan, CPrimePValue: nan,
			Type:      MediationNone,
			Undefined: true,
		}
	}

	c := float64(total.Coefficients[independent])
	cP := float64(total.PValues[independent])
	a := float64(aModel.Coefficients[independent])
	aP := float64(aModel.PValues[independent])
	cPrime := float64(direct.Coefficients[independent])
	cPrimeP := float64(direct.PValues[independent])
	b := float64(direct.Coefficients[mediator])
	bP := float64(direct.PValues[mediator])

	var kind string
	switch {
	case cP < 0.05 && cPrimeP >= 0.05:
		kind = MediationFull
	case cP < 0.05 && cPrimeP < 0.05 && math.Abs(cPrime) < math.Abs(c):
		kind = MediationPartial
	default:
		kind = MediationNone
	}

	return MediationResult{
		Independent:    independent,
		Mediator:       mediator,
		Dependent:      dependent,
		N:              len(rows),
		TotalEffect:    Float(c),
		DirectEffect:   Float(cPrime),
		IndirectEffect: Float(a * b),
		APath:          Float(a),
		BPath:          Float(b),
		APValue:        Float(aP),
		BPValue:        Float(bP),
		CPValue:        Float(cP),
		CPrimePValue:   Float(cPrimeP),
		Type:           kind,
	}
}

func takeRows(xs []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = xs[r]
	}
	return out
}
