package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/handler"
	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/middleware"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/auth"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DayHandler     *handler.DayHandler
	EntryHandler   *handler.EntryHandler
	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	StateHandler   *handler.StateHandler
	HealthHandler  *handler.HealthHandler
	JWTManager     *auth.JWTManager
	Metrics        *metrics.Metrics
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router. When JWTManager is nil the API
// runs without token checks, matching a single-operator deployment.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Open endpoints: the login screen needs the operator list
		// before any token exists.
		r.Post("/auth/login", cfg.AuthHandler.Login)
		r.Get("/users", cfg.AuthHandler.ListUsers)

		r.Group(func(r chi.Router) {
			if cfg.JWTManager != nil {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			}

			r.Post("/auth/logout", cfg.AuthHandler.Logout)
			r.Get("/auth/session", cfg.AuthHandler.Session)

			r.Route("/day", func(r chi.Router) {
				r.Get("/", cfg.DayHandler.Get)
				r.Post("/select", cfg.DayHandler.Select)
				r.Put("/opening-balance", cfg.DayHandler.SetOpeningBalance)
				r.Post("/finalize", cfg.DayHandler.Finalize)
			})
			r.Get("/days/{date}", cfg.DayHandler.GetByDate)

			r.Route("/profits", func(r chi.Router) {
				r.Post("/", cfg.EntryHandler.UpsertProfit)
				r.Delete("/{id}", cfg.EntryHandler.DeleteProfit)
			})
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", cfg.EntryHandler.UpsertExpense)
				r.Delete("/{id}", cfg.EntryHandler.DeleteExpense)
			})
			r.Route("/advances", func(r chi.Router) {
				r.Post("/", cfg.EntryHandler.UpsertAdvance)
				r.Delete("/{id}", cfg.EntryHandler.DeleteAdvance)
			})
			r.Route("/dues", func(r chi.Router) {
				r.Post("/", cfg.EntryHandler.UpsertDue)
				r.Delete("/{id}", cfg.EntryHandler.DeleteDue)
			})
			r.Route("/money", func(r chi.Router) {
				r.Post("/", cfg.EntryHandler.UpsertMoneyEntry)
				r.Delete("/{id}", cfg.EntryHandler.DeleteMoneyEntry)
			})

			r.Get("/catalogs", cfg.CatalogHandler.Get)
			r.Get("/vehicles", cfg.CatalogHandler.Vehicles)

			r.Get("/state", cfg.StateHandler.Get)
			r.Post("/state/dismiss-recovery", cfg.StateHandler.DismissRecovery)
		})
	})

	return r
}
