package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"tiershowcase/internal/delivery/http/helpers"
	"tiershowcase/internal/delivery/http/middleware"
	"tiershowcase/internal/domain"
)

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Tier            domain.Tier     `json:"tier"`
	Accessible      []*domain.Event `json:"accessible"`
	Locked          []*domain.Event `json:"locked"`
	AccessibleCount int             `json:"accessible_count"`
	LockedCount     int             `json:"locked_count"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LockedEventResponse tells the client which tier unlocks an event.
type LockedEventResponse struct {
	EventID      string      `json:"event_id"`
	RequiredTier domain.Tier `json:"required_tier"`
	ViewerTier   domain.Tier `json:"viewer_tier"`
}

// LockedEventErrorResponse is the envelope for GET /events/{eventID} (403): error is set and data carries the required tier.
type LockedEventErrorResponse struct {
	Data  LockedEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events for a tier
// @Description Returns every event ordered by date, split into those accessible at the selected tier and locked previews above it. The tier is a client-held selection; omitted means "free". Requires authentication.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param tier query string false "Viewer tier" Enums(free, silver, gold, platinum) default(free)
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains accessible and locked events"
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_tier"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: malformed_event_data"
// @Failure 502 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	tier, err := helpers.ParseViewerTier(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidTier, "tier must be one of free, silver, gold, platinum")
		return
	}
	listing, err := c.Service.ListForTier(r.Context(), tier)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Tier:            listing.Tier,
		Accessible:      listing.Accessible,
		Locked:          listing.Locked,
		AccessibleCount: len(listing.Accessible),
		LockedCount:     len(listing.Locked),
	})
}

// GetEvent godoc
// @Summary Get an event for a tier
// @Description Returns the event when the selected tier grants access. Otherwise responds 403 with the tier required to unlock it. Requires authentication.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param tier query string false "Viewer tier" Enums(free, silver, gold, platinum) default(free)
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_tier"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} controllers.LockedEventErrorResponse "error.code: locked"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: malformed_event_data"
// @Failure 502 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if _, err := uuid.Parse(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be a UUID")
		return
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	tier, err := helpers.ParseViewerTier(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidTier, "tier must be one of free, silver, gold, platinum")
		return
	}
	event, err := c.Service.GetForTier(r.Context(), eventID, tier)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

func (c *EventController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var locked *domain.LockedError
	switch {
	case errors.As(err, &locked):
		helpers.WriteJSON(w, http.StatusForbidden, helpers.APIResponse{
			Data: LockedEventResponse{
				EventID:      locked.EventID,
				RequiredTier: locked.Required,
				ViewerTier:   locked.Viewer,
			},
			Error: &helpers.APIError{
				Code:    helpers.ErrCodeLocked,
				Message: fmt.Sprintf("upgrade to %s to access", locked.Required.Label()),
			},
		})
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrInvalidTier):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidTier, err.Error())
	case errors.Is(err, domain.ErrMalformedTier):
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeMalformedEventData, "event store returned an event with an unknown tier")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeStoreUnavailable, "failed to fetch events, reload to try again")
	}
}
