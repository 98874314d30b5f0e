package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/payoffsim/internal/adapter/http"
	"github.com/iho/payoffsim/internal/adapter/http/dto"
	"github.com/iho/payoffsim/internal/adapter/http/handler"
	"github.com/iho/payoffsim/internal/adapter/idgen"
	redisRepo "github.com/iho/payoffsim/internal/adapter/repository/redis"
	"github.com/iho/payoffsim/internal/infrastructure/config"
	"github.com/iho/payoffsim/internal/infrastructure/logger"
	"github.com/iho/payoffsim/internal/infrastructure/metrics"
	"github.com/iho/payoffsim/internal/infrastructure/redis"
	"github.com/iho/payoffsim/internal/strategy"
	"github.com/iho/payoffsim/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var replayStore usecase.ReplayStore
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(context.Background(), cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis, idempotency keys enabled")

		replayStore = redisRepo.NewReplayStore(redisClient)
	}

	server := newServer(cfg, log, registry, replayStore)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newServer wires use cases, handlers and metrics into an HTTP server.
func newServer(cfg *config.Config, log zerolog.Logger, registry *prometheus.Registry, replayStore usecase.ReplayStore) *http.Server {
	m := metrics.NewWithRegisterer(registry)

	// Initialize use cases
	comparisonUC := usecase.NewComparisonUseCase(
		strategy.Default(),
		idgen.NewULIDGenerator(),
		log,
		usecase.WithMetrics(m),
	)

	// Initialize handlers
	simulationHandler := handler.NewSimulationHandler(comparisonUC, dto.SimulationDefaults{
		MaxMonths:     cfg.MaxMonths,
		ReinvestFreed: cfg.ReinvestFreed,
		Parallel:      cfg.Parallel,
	})
	healthHandler := handler.NewHealthHandler(len(comparisonUC.Strategies()))

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SimulationHandler: simulationHandler,
		HealthHandler:     healthHandler,
		Logger:            log,
		Metrics:           m,
		Gatherer:          registry,
		ReplayStore:       replayStore,
		ReplayTTL:         cfg.IdempotencyTTL,
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
