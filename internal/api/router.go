package api

import (
	"log/slog"
	"net/http"
	"time"

	"library-server/internal/api/handler"
	mw "library-server/internal/api/middleware"
	"library-server/internal/config"
	"library-server/internal/domain/address"
	"library-server/internal/domain/customer"
	"library-server/internal/domain/item"
	"library-server/internal/domain/loan"

	_ "library-server/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func SetupRouter(
	addressService address.AddressService,
	customerService customer.CustomerService,
	itemService item.ItemService,
	loanService loan.LoanService,
	redisClient *redis.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, redisClient, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, cfg, logger)
	setupAddressRoutes(router, cfg, addressService, logger)
	setupCustomerRoutes(router, cfg, customerService, logger)
	setupItemRoutes(router, cfg, itemService, logger)
	setupLoanRoutes(router, cfg, loanService, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, redisClient, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(*cfg, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})
}

func setupAddressRoutes(router *chi.Mux, cfg *config.Config, svc address.AddressService, logger *slog.Logger) {
	h := handler.NewAddressHandler(svc, logger)

	router.Route("/addresses", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Get("/", h.List)
		r.Get("/zip/{zip}", h.FindByZip)
		r.Get("/street/{street}", h.FindByStreet)
		r.Delete("/{addressID}", h.Delete)
	})
}

func setupCustomerRoutes(router *chi.Mux, cfg *config.Config, svc customer.CustomerService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, logger)

	router.Route("/customers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.Create)
		r.Get("/lastname/{lastName}", h.FindByLastName)
		r.Get("/address/{addressID}", h.FindByAddress)
		r.Get("/street/{street}", h.FindByStreet)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Upsert)
			r.Delete("/", h.Delete)
		})
	})
}

func setupItemRoutes(router *chi.Mux, cfg *config.Config, svc item.ItemService, logger *slog.Logger) {
	h := handler.NewItemHandler(svc, logger)

	router.Route("/items", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/title/{title}", h.FindByTitle)
		r.Route("/{itemID}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Upsert)
			r.Delete("/", h.Delete)
		})
	})
}

func setupLoanRoutes(router *chi.Mux, cfg *config.Config, svc loan.LoanService, logger *slog.Logger) {
	h := handler.NewLoanHandler(svc, logger)

	router.Route("/loans", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.Create)
		r.Put("/{loanID}", h.Upsert)
		r.Get("/item/{itemID}", h.FindByItem)
		r.Delete("/item/{itemID}", h.DeleteByItem)
	})
}
