package survey

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultImputeThreshold is the missing-rate ceiling below which a column
// is mean-imputed.
const DefaultImputeThreshold = 0.20

// ParseCSV parses comma-separated bytes into a Frame. Columns named in the
// registry's required set stay text; everything else is numeric with NaN
// for empty or unparseable cells.
func ParseCSV(data []byte, reg *Registry) (*Frame, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: empty input")
	}
	header := records[0]
	rows := records[1:]

	textCols := map[string]bool{}
	for _, c := range reg.Required {
		textCols[c] = true
	}

	f := NewFrame(len(rows))
	for j, name := range header {
		name = strings.TrimSpace(name)
		if textCols[name] {
			vals := make([]string, len(rows))
			for i, rec := range rows {
				if j < len(rec) {
					vals[i] = strings.TrimSpace(rec[j])
				}
			}
			if err := f.SetText(name, vals); err != nil {
				return nil, err
			}
			continue
		}
		vals := make([]float64, len(rows))
		for i, rec := range rows {
			vals[i] = math.NaN()
			if j >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[j])
			if cell == "" {
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				vals[i] = v
			}
		}
		if err := f.SetNumeric(name, vals); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// LoadCSV is the strict loader: it parses, validates the schema (fatal on
// any missing column), mean-imputes missing cells below the threshold, and
// logs out-of-range Likert values as warnings. Used by the standalone
// analysis path; the web upload path uses the lenient pipeline instead.
func LoadCSV(data []byte, reg *Registry, threshold float64, log *zap.Logger) (*Frame, ImputationResult, error) {
	f, err := ParseCSV(data, reg)
	if err != nil {
		return nil, ImputationResult{}, err
	}
	ok, errs := ValidateSchema(f, reg)
	if !ok {
		for _, e := range errs {
			log.Error("schema validation", zap.String("error", e))
		}
		return nil, ImputationResult{}, fmt.Errorf("schema validation failed with %d errors: %s", len(errs), strings.Join(errs, "; "))
	}
	res := ImputeMissing(f, reg, threshold, log)
	for col, n := range OutOfRangeCounts(res.Frame, reg) {
		log.Warn("likert values outside 1-5 range", zap.String("column", col), zap.Int("count", n))
	}
	log.Info("survey data loaded",
		zap.Int("rows", res.Frame.Len()),
		zap.Int("columns", len(res.Frame.Columns())),
		zap.Int("imputed_columns", len(res.Imputed)))
	return res.Frame, res, nil
}
