package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/adrienfranto/ia-enquete-policie/internal/api/handlers"
	mw "github.com/adrienfranto/ia-enquete-policie/internal/api/middleware"
	"github.com/adrienfranto/ia-enquete-policie/internal/buildconfig"
	"github.com/adrienfranto/ia-enquete-policie/internal/config"
	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/knowledge"
	"github.com/adrienfranto/ia-enquete-policie/internal/service"
	"github.com/adrienfranto/ia-enquete-policie/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router and request counters.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires the HTTP surface around evaluator. db may be nil, in which
// case investigation history is disabled.
func NewApp(db *pgxpool.Pool, evaluator domain.Evaluator, kb *knowledge.Base, logger *zap.Logger) *App {
	var investigationStore domain.InvestigationStore
	if db != nil {
		investigationStore = store.NewInvestigationStore(db)
	}

	investigationSvc := service.NewInvestigationService(evaluator, kb, investigationStore, logger)

	investigationHandler := handlers.NewInvestigationHandler(investigationSvc, logger)
	apiKey := config.APIKey()
	indexHandler := handlers.NewIndexHandler(investigationSvc, apiKey != "", logger)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/", indexHandler.Index)
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler(metricsCollector))

	r.Route("/api", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(apiKey))

		r.Post("/investigate", investigationHandler.Investigate)
		r.Get("/all_guilty/{crime_type}", investigationHandler.AllGuilty)
		r.Get("/suspects", investigationHandler.Suspects)
		r.Get("/crime_types", investigationHandler.CrimeTypes)
		r.Get("/investigations", investigationHandler.History)
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := buildconfig.VersionInfo()
		response["status"] = "ok"
		response["database"] = "disabled"

		status := http.StatusOK
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				response["status"] = "error"
				response["database"] = "unreachable"
				response["error"] = err.Error()
			} else {
				response["database"] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func (app *App) metricsHandler(mc *mw.MetricsCollector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"in_flight":      mc.InFlight(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure implementations satisfy interfaces at compile time.
var (
	_ domain.InvestigationStore = (*store.InvestigationStore)(nil)
)
