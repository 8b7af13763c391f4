package survey

import "fmt"

// ValidateSchema checks that every required, Likert, and numeric column of
// the registry is present. Errors are reported in that order, one per
// missing column. Callers decide whether a failure is fatal: the strict
// loader aborts, the analytics-upload path substitutes defaults.
func ValidateSchema(f *Frame, reg *Registry) (bool, []string) {
	var errs []string
	for _, col := range reg.Required {
		if !f.HasColumn(col) {
			errs = append(errs, fmt.Sprintf("Missing required column: %s", col))
		}
	}
	for _, col := range reg.LikertColumns() {
		if !f.HasColumn(col) {
			errs = append(errs, fmt.Sprintf("Missing Likert column: %s", col))
		}
	}
	for _, col := range reg.Numeric {
		if !f.HasColumn(col) {
			errs = append(errs, fmt.Sprintf("Missing numeric column: %s", col))
		}
	}
	return len(errs) == 0, errs
}

// OutOfRangeCounts returns, per Likert column, how many in-data values fall
// outside [1,5]. Out-of-range values are reported as warnings, never
// rejected.
func OutOfRangeCounts(f *Frame, reg *Registry) map[string]int {
	out := map[string]int{}
	for _, col := range reg.LikertColumns() {
		vals, ok := f.Numeric(col)
		if !ok {
			continue
		}
		c := 0
		for _, v := range vals {
			// NaN compares false on both sides, so missing cells never count.
			if v < LikertMin || v > LikertMax {
				c++
			}
		}
		if c > 0 {
			out[col] = c
		}
	}
	return out
}
