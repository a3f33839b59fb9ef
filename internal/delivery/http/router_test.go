package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tiershowcase/internal/delivery/http/controllers"
	"tiershowcase/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	validToken  = "good-token"
	goldEventID = "7b0c9a52-61d4-4c0e-a1d7-3f5e9b2c8d41"
)

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == validToken {
		return "user-1", nil
	}
	return "", errors.New("bad token")
}

type stubEventRepo struct{}

func (stubEventRepo) ListAllByDate(ctx context.Context) ([]*domain.Event, error) {
	d := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	return []*domain.Event{
		{ID: "a0f1c6e2-1111-4c0e-a1d7-3f5e9b2c8d41", Title: "Open Day", Tier: domain.TierFree, EventDate: d},
		{ID: goldEventID, Title: "Gold Gala", Tier: domain.TierGold, EventDate: d.AddDate(0, 0, 1)},
	}, nil
}

func (r stubEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events, _ := r.ListAllByDate(ctx)
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

type eventServiceStub struct{ repo stubEventRepo }

func (s eventServiceStub) ListForTier(ctx context.Context, viewer domain.Tier) (*domain.TierListing, error) {
	events, _ := s.repo.ListAllByDate(ctx)
	return domain.NewTierListing(events, viewer), nil
}

func (s eventServiceStub) GetForTier(ctx context.Context, id string, viewer domain.Tier) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.Allows(e.Tier) {
		return nil, &domain.LockedError{EventID: e.ID, Required: e.Tier, Viewer: viewer}
	}
	return e, nil
}

func newTestRouter(entryURL string) *http.ServeMux {
	eventCtrl := controllers.NewEventController(testLogger, eventServiceStub{})
	healthCtrl := controllers.NewHealthController(testLogger, nil)
	return NewRouter(eventCtrl, healthCtrl, RouterConfig{
		Verifier: stubVerifier{},
		EntryURL: entryURL,
		Logger:   testLogger,
	})
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		accept     string
		entryURL   string
		wantStatus int
		wantBody   string
	}{
		{name: "health is public", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK, wantBody: `"unchecked"`},
		{name: "tiers is public", method: http.MethodGet, target: "/tiers", wantStatus: http.StatusOK, wantBody: `"platinum"`},
		{name: "events requires auth", method: http.MethodGet, target: "/events", wantStatus: http.StatusUnauthorized, wantBody: `"unauthorized"`},
		{name: "bad token rejected", method: http.MethodGet, target: "/events", token: "nope", wantStatus: http.StatusUnauthorized},
		{name: "browser redirected to entry page", method: http.MethodGet, target: "/events", accept: "text/html", entryURL: "/", wantStatus: http.StatusSeeOther},
		{name: "events listed", method: http.MethodGet, target: "/events?tier=silver", token: validToken, wantStatus: http.StatusOK, wantBody: `"locked_count":1`},
		{name: "event locked", method: http.MethodGet, target: "/events/" + goldEventID + "?tier=silver", token: validToken, wantStatus: http.StatusForbidden, wantBody: `"required_tier":"gold"`},
		{name: "event unlocked", method: http.MethodGet, target: "/events/" + goldEventID + "?tier=platinum", token: validToken, wantStatus: http.StatusOK, wantBody: `"Gold Gala"`},
		{name: "wrong method", method: http.MethodPost, target: "/events", token: validToken, wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.entryURL)
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}
