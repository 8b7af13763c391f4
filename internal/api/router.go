// Package api exposes the rubric evaluation CRUD surface and the dataset
// analytics endpoints over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/analysis"
	"github.com/edugradeai/edugrade/internal/config"
	"github.com/edugradeai/edugrade/internal/middleware"
	"github.com/edugradeai/edugrade/internal/survey"
)

// Router wires handlers to their dependencies.
type Router struct {
	store    EvaluationStore
	pipeline *analysis.Pipeline
	reg      *survey.Registry
	auth     config.AuthConfig
	log      *zap.Logger
}

func NewRouter(store EvaluationStore, pipeline *analysis.Pipeline, reg *survey.Registry, auth config.AuthConfig, log *zap.Logger) *Router {
	return &Router{store: store, pipeline: pipeline, reg: reg, auth: auth, log: log}
}

// Handler builds the chi route tree.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger(rt.log))

	r.Get("/health", rt.handleHealth)
	r.Post("/api/auth/login", rt.handleLogin)

	r.Route("/api/evaluations", func(r chi.Router) {
		r.Post("/", rt.handleCreateEvaluation)
		r.Get("/", rt.handleListEvaluations)
		r.Get("/recent", rt.handleRecentEvaluations)
		r.Get("/{id}", rt.handleGetEvaluation)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth([]byte(rt.auth.JWTSecret)))
		r.Post("/api/analytics", rt.handleAnalytics)
		r.Post("/api/analytics/report", rt.handleAnalyticsReport)
		r.Post("/api/analytics/scores", rt.handleAnalyticsScores)
	})

	return r
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"name": "EduGrade API",
	})
}
