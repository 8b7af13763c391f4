package main

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/edugradeai/edugrade/internal/analysis"
	"github.com/edugradeai/edugrade/internal/api"
	"github.com/edugradeai/edugrade/internal/config"
	"github.com/edugradeai/edugrade/internal/db"
	"github.com/edugradeai/edugrade/internal/logger"
	"github.com/edugradeai/edugrade/internal/survey"
)

func main() {
	cfgDir := os.Getenv("EDUGRADE_CONFIG")
	if cfgDir == "" {
		cfgDir = "."
	}
	cfg, err := config.Load(cfgDir)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}
	log := logger.New(cfg.Logger)
	defer func() { _ = log.Sync() }()

	store, err := db.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	reg := survey.DefaultRegistry()
	pipeline := analysis.NewPipeline(reg, cfg.Analysis.ImputeThreshold, log)
	router := api.NewRouter(store, pipeline, reg, cfg.Auth, log)

	apiHandler := router.Handler()
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/health", apiHandler)
	if cfg.Server.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log.Info("edugrade server listening", zap.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}
