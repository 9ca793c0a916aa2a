package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrienfranto/ia-enquete-policie/internal/api"
	"github.com/adrienfranto/ia-enquete-policie/internal/buildconfig"
	"github.com/adrienfranto/ia-enquete-policie/internal/config"
	"github.com/adrienfranto/ia-enquete-policie/internal/engine"
	"github.com/adrienfranto/ia-enquete-policie/internal/evaluator"
	"github.com/adrienfranto/ia-enquete-policie/internal/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	_ = config.Load()

	logger, err := newLogger(config.LogLevel())
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("version", buildconfig.Version()), zap.String("commit", buildconfig.Commit()))

	ctx := context.Background()

	var pool *pgxpool.Pool
	if dbURL := config.DatabaseURL(); dbURL != "" {
		if err := migrations.Run(dbURL); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}

		pool, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		logger.Info("connected to database")
	} else {
		logger.Info("DATABASE_URL not set, investigation history disabled")
	}

	eng := engine.Default()
	provider := config.Evaluator()
	ev, err := evaluator.NewWithEngine(provider, eng, evaluator.Options{
		PrologBinary:  config.PrologBinary(),
		PrologTimeout: config.PrologTimeout(),
		CacheTTL:      config.VerdictCacheTTL(),
	}, logger)
	if err != nil {
		logger.Fatal("evaluator initialization failed", zap.String("provider", provider), zap.Error(err))
	}
	logger.Info("evaluator initialized", zap.String("provider", provider))

	app := api.NewApp(pool, ev, eng.KnowledgeBase(), logger)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
