package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/schemascore/schemascore-engine/pkg/config"
	"github.com/schemascore/schemascore-engine/pkg/handlers"
	"github.com/schemascore/schemascore-engine/pkg/logging"
	"github.com/schemascore/schemascore-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load .env for local development; missing file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	scoringCfg := services.DefaultScoringConfig()
	scoringCfg.SimilarityThreshold = cfg.Scoring.SimilarityThreshold
	scoringCfg.MinNameLength = cfg.Scoring.MinNameLength
	scoringCfg.MinDescriptionLength = cfg.Scoring.MinDescriptionLength

	scoringService := services.NewScoringService(scoringCfg, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewScoreHandler(scoringService, logger).RegisterRoutes(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting schemascore-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env),
		zap.Float64("similarity_threshold", cfg.Scoring.SimilarityThreshold))

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
