package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/analysis"
	"github.com/edugradeai/edugrade/internal/survey"
)

const maxUploadBytes = 10 << 20

// readDataset pulls the uploaded CSV out of a multipart form ("dataset"
// field) or the raw request body. Form parsing is gated on the content
// type; ParseForm would otherwise consume a raw body it cannot parse.
func readDataset(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err == nil {
			if file, _, err := r.FormFile("dataset"); err == nil {
				defer file.Close()
				return io.ReadAll(io.LimitReader(file, maxUploadBytes))
			}
		}
	}
	return io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
}

// POST /api/analytics — full structured analytics over an uploaded CSV.
func (rt *Router) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	data, err := readDataset(r)
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "dataset upload required")
		return
	}
	result, err := rt.pipeline.Run(data)
	if err != nil {
		rt.log.Warn("analytics run failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// POST /api/analytics/report — plain-text report over an uploaded CSV.
func (rt *Router) handleAnalyticsReport(w http.ResponseWriter, r *http.Request) {
	data, err := readDataset(r)
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "dataset upload required")
		return
	}
	result, raw, scores, err := rt.pipeline.RunWithWeights(data, nil)
	if err != nil {
		rt.log.Warn("report run failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report := analysis.GenerateAnalysisReport(raw, scores, rt.reg) +
		analysis.GeneratePathReport(result.PathAnalysis)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

// POST /api/analytics/scores — score table CSV download. An optional
// "weights" form field (JSON object of score column -> weight) is
// normalized here before scoring; the core scorer applies weights as
// received.
func (rt *Router) handleAnalyticsScores(w http.ResponseWriter, r *http.Request) {
	data, err := readDataset(r)
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "dataset upload required")
		return
	}
	var weights map[string]float64
	if raw := r.FormValue("weights"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &weights); err != nil {
			writeError(w, http.StatusBadRequest, "invalid weights: "+err.Error())
			return
		}
		weights = survey.NormalizeWeights(weights)
	}
	_, _, scores, err := rt.pipeline.RunWithWeights(data, weights)
	if err != nil {
		rt.log.Warn("scores run failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := survey.ExportCSV(scores)
	if err != nil {
		rt.log.Error("export scores", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to export scores")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="scores.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
