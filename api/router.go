package api

import (
	"net/http"
	"time"

	"bigode_server/api/admin"
	"bigode_server/api/auth"
	"bigode_server/api/health"
	"bigode_server/api/middleware"
	"bigode_server/api/realtime"
	"bigode_server/api/storefront"
	"bigode_server/config"
	"bigode_server/database"
	"bigode_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	db := database.GetInstance()
	cfg := config.GetConfig()

	sm := services.NewServiceManager(standardLogger, cfg, db)
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService)

	// Reap websocket subscribers that stopped pinging
	sm.RealtimeService.StartStaleSweeper(30*time.Second, time.Minute)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS (must come before auth)
	r.Use(mw.SetupCORS().Handler)

	r.Use(mw.RateLimitMiddleware())

	NewRouterManager(
		storefront.NewStorefrontRoutesManager(standardLogger, cfg,
			sm.CatalogService, sm.EstablishmentService, sm.OrderService, sm.WheelService),
		health.NewHealthRoutesManager(sm.HealthService),
		auth.NewAuthRoutesManager(standardLogger, sm.AuthService, cfg, mw),
		admin.NewAdminRoutesManager(standardLogger, cfg, sm, mw),
		realtime.NewRealtimeRoutesManager(standardLogger, cfg, sm.RealtimeService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the Bigode Lanches API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
