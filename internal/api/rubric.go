package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/models"
	"github.com/edugradeai/edugrade/internal/rubric"
)

// EvaluationStore is the persistence surface the rubric handlers need.
type EvaluationStore interface {
	InsertEvaluation(ctx context.Context, e *models.Evaluation) error
	GetEvaluation(ctx context.Context, id string) (*models.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]*models.Evaluation, error)
	RecentEvaluations(ctx context.Context, limit int) ([]*models.Evaluation, error)
}

type evaluationRequest struct {
	AppName               string `json:"app_name"`
	Audience              string `json:"audience"`
	Summary               string `json:"summary"`
	PedagogicalDesign     int    `json:"pedagogical_design"`
	UIUX                  int    `json:"ui_ux"`
	Engagement            int    `json:"engagement"`
	TechnicalPerformance  int    `json:"technical_performance"`
	LearningEffectiveness int    `json:"learning_effectiveness"`
}

// POST /api/evaluations
func (rt *Router) handleCreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.AppName) == "" {
		writeError(w, http.StatusBadRequest, "app_name required")
		return
	}
	e := &models.Evaluation{
		ID:                    uuid.NewString(),
		AppName:               strings.TrimSpace(req.AppName),
		Audience:              strings.TrimSpace(req.Audience),
		Summary:               strings.TrimSpace(req.Summary),
		PedagogicalDesign:     req.PedagogicalDesign,
		UIUX:                  req.UIUX,
		Engagement:            req.Engagement,
		TechnicalPerformance:  req.TechnicalPerformance,
		LearningEffectiveness: req.LearningEffectiveness,
		CreatedAt:             time.Now().UTC(),
	}
	if err := rubric.ValidateRatings(e); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e.QualityScore = rubric.QualityScore(e)
	if err := rt.store.InsertEvaluation(r.Context(), e); err != nil {
		rt.log.Error("save evaluation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to save evaluation")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// GET /api/evaluations
func (rt *Router) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	evals, err := rt.store.ListEvaluations(r.Context())
	if err != nil {
		rt.log.Error("list evaluations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to load evaluations")
		return
	}
	if evals == nil {
		evals = []*models.Evaluation{}
	}
	writeJSON(w, http.StatusOK, evals)
}

// GET /api/evaluations/recent
func (rt *Router) handleRecentEvaluations(w http.ResponseWriter, r *http.Request) {
	evals, err := rt.store.RecentEvaluations(r.Context(), 3)
	if err != nil {
		rt.log.Error("recent evaluations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to load evaluations")
		return
	}
	if evals == nil {
		evals = []*models.Evaluation{}
	}
	writeJSON(w, http.StatusOK, evals)
}

// GET /api/evaluations/{id} — the stored record plus derived insights and
// the chart payload.
func (rt *Router) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, err := rt.store.GetEvaluation(r.Context(), id)
	if err != nil {
		rt.log.Error("get evaluation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to load evaluation")
		return
	}
	if e == nil {
		writeError(w, http.StatusNotFound, "evaluation not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"evaluation": e,
		"insights":   rubric.BuildInsights(e),
		"chart":      rubric.ChartPayload(e),
	})
}
