// Command api serves tier-gated event listings over HTTP.
//
// @title Tier Showcase API
// @version 1.0
// @description Membership-tier gated event listings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider token.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"tiershowcase/config"
	_ "tiershowcase/docs"
	"tiershowcase/internal/adapters/auth"
	httpdelivery "tiershowcase/internal/delivery/http"
	"tiershowcase/internal/delivery/http/controllers"
	"tiershowcase/internal/delivery/http/middleware"
	"tiershowcase/internal/domain"
	"tiershowcase/internal/repository/postgres"
	"tiershowcase/internal/repository/supabase"
	"tiershowcase/internal/services"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("api exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openEventStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	eventSvc := services.NewEventService(repo, logger, cfg.RequestTimeout)
	pinger, _ := repo.(domain.Pinger)
	router := httpdelivery.NewRouter(
		controllers.NewEventController(logger, eventSvc),
		controllers.NewHealthController(logger, pinger),
		httpdelivery.RouterConfig{Verifier: verifier, EntryURL: cfg.EntryURL, Logger: logger},
	)
	handler := middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, router)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", "port", cfg.Port, "env", cfg.Environment, "event_store", cfg.EventStore)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
	return nil
}

func openEventStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.EventRepository, func(), error) {
	if cfg.EventStore == config.EventStoreSupabase {
		client := &http.Client{Timeout: cfg.RequestTimeout}
		repo := supabase.NewEventRepository(client, supabase.Config{URL: cfg.SupabaseURL, AnonKey: cfg.SupabaseAnonKey})
		return repo, func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		// Not fatal: requests surface store_unavailable until the store comes back.
		logger.Warn("event store not reachable at startup", "err", err)
	}
	return postgres.NewEventRepository(db), func() { _ = db.Close() }, nil
}

func newVerifier(ctx context.Context, cfg *config.Config) (domain.TokenVerifier, error) {
	vc := auth.VerifierConfig{Issuer: cfg.Auth.Issuer, Audience: cfg.Auth.Audience}
	if cfg.Auth.JWKSURL != "" {
		return auth.NewJWKSVerifier(ctx, cfg.Auth.JWKSURL, vc)
	}
	return auth.NewHMACVerifier(cfg.Auth.JWTSecret, vc), nil
}
