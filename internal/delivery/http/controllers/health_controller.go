package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tiershowcase/internal/delivery/http/helpers"
	"tiershowcase/internal/domain"
)

const healthPingTimeout = 2 * time.Second

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// HealthController reports liveness and, when the event store supports it, store reachability.
type HealthController struct {
	Logger *slog.Logger
	Store  domain.Pinger
}

// NewHealthController returns a HealthController. store may be nil.
func NewHealthController(logger *slog.Logger, store domain.Pinger) *HealthController {
	return &HealthController{Logger: logger, Store: store}
}

// Health godoc
// @Summary Health check
// @Description Reports service liveness and event store reachability ("ok", "down" or "unchecked").
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status: ok"
// @Failure 503 {object} helpers.APIResponse "data.status: degraded"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if c.Store == nil {
		helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Store: "unchecked"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if err := c.Store.Ping(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "event store ping failed", "err", err)
		helpers.WriteJSONSuccess(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Store: "down"})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Store: "ok"})
}
