package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tiershowcase/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService returns an EventService that reads events from eventRepo and filters them
// by viewer tier. Each call is bounded by timeout.
func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListForTier(ctx context.Context, viewer domain.Tier) (*domain.TierListing, error) {
	if !viewer.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, string(viewer))
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAllByDate(ctx)
	if err != nil {
		s.logIntegrity(ctx, err)
		return nil, fmt.Errorf("list events: %w", err)
	}
	listing := domain.NewTierListing(events, viewer)
	s.logger.DebugContext(ctx, "events partitioned",
		"tier", viewer,
		"accessible", len(listing.Accessible),
		"locked", len(listing.Locked),
	)
	return listing, nil
}

func (s *eventService) GetForTier(ctx context.Context, eventID string, viewer domain.Tier) (*domain.Event, error) {
	if !viewer.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, string(viewer))
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logIntegrity(ctx, err)
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !viewer.Allows(event.Tier) {
		return nil, &domain.LockedError{EventID: event.ID, Required: event.Tier, Viewer: viewer}
	}
	return event, nil
}

// logIntegrity records events rejected for carrying an unknown tier so they can be fixed at the source.
func (s *eventService) logIntegrity(ctx context.Context, err error) {
	var mte *domain.MalformedTierError
	if errors.As(err, &mte) {
		s.logger.ErrorContext(ctx, "event store returned unknown tier",
			"event_id", mte.EventID,
			"tier", mte.Value,
		)
	}
}
