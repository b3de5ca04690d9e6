package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobportal/jobportal-go/internal/config"
	"github.com/jobportal/jobportal-go/internal/crypto"
	"github.com/jobportal/jobportal-go/internal/repository"
	"github.com/jobportal/jobportal-go/internal/router"
	"github.com/jobportal/jobportal-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		slog.Error("schema setup failed", "error", err)
		os.Exit(1)
	}

	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	handler := router.New(router.Deps{
		DB:                db,
		Tokens:            tokens,
		Auth:              service.NewAuthService(userRepo, tokens),
		Users:             service.NewUserService(userRepo, tokens),
		Jobs:              service.NewJobService(jobRepo),
		AuthRatePerSecond: cfg.AuthRatePerSecond(),
		AuthRateBurst:     cfg.AuthRateLimit,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var h slog.Handler
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
