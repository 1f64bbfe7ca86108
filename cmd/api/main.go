package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-smart-planner/config"
	"campus-smart-planner/internal/httpserver"
	"campus-smart-planner/internal/middleware"
	plannerHTTP "campus-smart-planner/internal/planner/delivery/http"
	"campus-smart-planner/internal/planner/resolver"
	"campus-smart-planner/internal/planner/usecase"
	"campus-smart-planner/pkg/gemini"
	"campus-smart-planner/pkg/log"
)

// @title       Campus Smart Planner API
// @description Parses natural-language task descriptions into structured, geocodable records for campus navigation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration — a missing generation credential is fatal here, never
	// a per-request error.
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Smart Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Planner domain
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	campusResolver := resolver.New(resolver.DefaultConfig())

	cacheTTL, ttlErr := time.ParseDuration(cfg.Planner.CacheTTL)
	if ttlErr != nil {
		logger.Warnf(ctx, "Invalid cache TTL %q, falling back to 10m: %v", cfg.Planner.CacheTTL, ttlErr)
		cacheTTL = 10 * time.Minute
	}

	plannerUC := usecase.New(logger, geminiClient, campusResolver, cfg.Planner.CacheSize, cacheTTL)
	plannerHandler := plannerHTTP.New(logger, plannerUC)

	mw := middleware.New(logger, cfg.Planner)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		PlannerHandler: plannerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
