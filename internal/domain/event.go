package domain

import (
	"context"
	"time"
)

// Event is a listed event gated by a membership tier.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	ImageURL    *string   `json:"image_url"`
	Tier        Tier      `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventRepository is the read side of the remote event store.
type EventRepository interface {
	// ListAllByDate returns every event ordered by event date ascending.
	ListAllByDate(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

// Pinger is implemented by stores that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EventService defines tier-aware event retrieval.
type EventService interface {
	ListForTier(ctx context.Context, viewer Tier) (*TierListing, error)
	GetForTier(ctx context.Context, eventID string, viewer Tier) (*Event, error)
}
