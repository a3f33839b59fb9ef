package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tiershowcase/internal/delivery/http/controllers"
	"tiershowcase/internal/delivery/http/middleware"
	"tiershowcase/internal/domain"
)

// RouterConfig carries the values the router needs beyond controllers.
type RouterConfig struct {
	Verifier domain.TokenVerifier
	// EntryURL is where browsers without a valid token are sent. Empty means always 401.
	EntryURL string
	Logger   *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, healthController *controllers.HealthController, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(cfg.Verifier, cfg.EntryURL, cfg.Logger)

	// Public
	mux.HandleFunc("GET /health", healthController.Health)
	mux.HandleFunc("GET /tiers", controllers.ListTiers)

	// Events
	mux.HandleFunc("GET /events", requireAuth(eventController.ListEvents))
	mux.HandleFunc("GET /events/{eventID}", requireAuth(eventController.GetEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
