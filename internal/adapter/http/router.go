package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/payoffsim/internal/adapter/http/handler"
	"github.com/iho/payoffsim/internal/adapter/http/middleware"
	"github.com/iho/payoffsim/internal/infrastructure/metrics"
	"github.com/iho/payoffsim/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SimulationHandler *handler.SimulationHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
	// Metrics enables request metrics when set.
	Metrics *metrics.Metrics
	// Gatherer serves /metrics when set.
	Gatherer prometheus.Gatherer
	// ReplayStore enables Idempotency-Key handling when set.
	ReplayStore usecase.ReplayStore
	ReplayTTL   time.Duration
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.ReplayStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.ReplayStore, cfg.ReplayTTL, cfg.Logger).Wrap)
		}

		r.Post("/simulations", cfg.SimulationHandler.Create)
		r.Get("/strategies", cfg.SimulationHandler.ListStrategies)
	})

	return r
}
