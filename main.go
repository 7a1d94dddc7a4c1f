package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"deal-analyzer/config"
	httpLayer "deal-analyzer/http"
	"deal-analyzer/logging"
	"deal-analyzer/repository"
	"deal-analyzer/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	ctx := context.Background()
	checks := map[string]repository.Pinger{}

	var cache repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		defer redisCache.Close()
		cache = redisCache
		checks["cache"] = redisCache
		logger.Info("using redis cache", "addr", cfg.Cache.RedisAddr)
	} else {
		memoryCache := repository.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		cache = memoryCache
		checks["cache"] = memoryCache
		logger.Info("using in-memory cache")
	}

	var scenarioRepo repository.ScenarioRepository
	if cfg.Database.Path != "" {
		sqliteRepo, err := repository.NewSQLiteScenarioRepository(ctx, cfg.Database.Path)
		if err != nil {
			logger.Error("failed to open scenario database", "path", cfg.Database.Path, "error", err)
			os.Exit(1)
		}
		defer sqliteRepo.Close()
		scenarioRepo = sqliteRepo
		checks["database"] = sqliteRepo
		logger.Info("using sqlite scenario store", "path", cfg.Database.Path)
	} else {
		scenarioRepo = repository.NewScenarioRepositoryMemory()
		logger.Info("using in-memory scenario store")
	}

	loanService := service.NewLoanService(cache, logger)
	calculatorService := service.NewCalculatorService(logger)
	termRecommendationService := service.NewTermRecommendationService(loanService, logger)
	scenarioService := service.NewScenarioService(scenarioRepo, cache, calculatorService, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:               httpLayer.NewLoanHandler(loanService, logger),
		Calculator:         httpLayer.NewCalculatorHandler(calculatorService, logger),
		TermRecommendation: httpLayer.NewTermRecommendationHandler(termRecommendationService, logger),
		Scenario:           httpLayer.NewScenarioHandler(scenarioService, logger),
		Health:             httpLayer.NewHealthHandler(checks, logger),
	}, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "address", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", "error", err)
		return
	case <-quit:
		logger.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	logger.Info("server exited")
}
