package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/http/middleware"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler     *handler.AccountHandler
	HoldingHandler     *handler.HoldingHandler
	TransactionHandler *handler.TransactionHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	AssistantHandler   *handler.AssistantHandler
	HealthHandler      *handler.HealthHandler

	Logger             zerolog.Logger
	Metrics            *metrics.Metrics
	RateLimiter        *middleware.RateLimiter
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	CORSAllowedOrigins []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.IdempotencyKeyHeader},
		ExposedHeaders: []string{"X-Idempotency-Replay"},
		MaxAge:         300,
	}))

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Get("/", handler.Root)

		// Accounts and their holdings
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Put("/{id}", cfg.AccountHandler.Update)
			r.Delete("/{id}", cfg.AccountHandler.Delete)
			r.Post("/{id}/holdings", cfg.HoldingHandler.Create)
			r.Get("/{id}/holdings", cfg.HoldingHandler.ListByAccount)
		})

		r.Route("/holdings", func(r chi.Router) {
			r.Put("/{id}", cfg.HoldingHandler.Update)
			r.Delete("/{id}", cfg.HoldingHandler.Delete)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Put("/{id}", cfg.TransactionHandler.Update)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/spending-by-category", cfg.AnalyticsHandler.SpendingByCategory)
			r.Get("/monthly-spending", cfg.AnalyticsHandler.MonthlySpending)
			r.Get("/asset-allocation", cfg.AnalyticsHandler.AssetAllocation)
		})

		// Assistant routes carry the per-IP rate limit
		r.Route("/ai", func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.Use(cfg.RateLimiter.Limit)
			}
			r.Post("/chat", cfg.AssistantHandler.Chat)
			r.Get("/messages", cfg.AssistantHandler.History)
			r.Post("/upload", cfg.AssistantHandler.Upload)
			r.Post("/insights", cfg.AssistantHandler.Insights)
		})
	})

	return r
}
