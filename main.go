package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/Fosberg-codex/AI-Models-Base/config"
	"github.com/Fosberg-codex/AI-Models-Base/internal/api"
	"github.com/Fosberg-codex/AI-Models-Base/internal/database"
	"github.com/Fosberg-codex/AI-Models-Base/pkg/logger"
)

// @title AI-Models-Base API
// @version 1.0
// @description Registry service for AI model metadata records.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// The registry is authoritative and purely in-memory; redis only caches
	// reads, so a missing cache is not fatal.
	if cfg.CacheEnabled {
		if err := database.ConnectRedis(cfg); err != nil {
			logger.Log.Warn("redis unavailable, running without read cache", zap.Error(err))
		}
	}

	router := api.NewRouter()

	logger.Log.Info("starting server", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
