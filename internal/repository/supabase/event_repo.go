package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tiershowcase/internal/domain"
)

// Config holds the PostgREST endpoint of a Supabase project.
type Config struct {
	URL     string
	AnonKey string
}

type eventRepository struct {
	client  *http.Client
	baseURL string
	key     string
}

// NewEventRepository returns an EventRepository that reads the events table through the
// Supabase REST gateway.
func NewEventRepository(client *http.Client, cfg Config) domain.EventRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &eventRepository{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		key:     cfg.AnonKey,
	}
}

// eventRow is the wire shape of a row in the events table.
type eventRow struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	EventDate   string  `json:"event_date"`
	ImageURL    *string `json:"image_url"`
	Tier        string  `json:"tier"`
	CreatedAt   string  `json:"created_at"`
}

// Postgres timestamps come back as RFC 3339 for timestamptz and without an offset for timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (row eventRow) toDomain() (*domain.Event, error) {
	tier, err := domain.ParseTier(row.Tier)
	if err != nil {
		return nil, &domain.MalformedTierError{EventID: row.ID, Value: row.Tier}
	}
	eventDate, err := parseTimestamp(row.EventDate)
	if err != nil {
		return nil, fmt.Errorf("event %s: event_date: %w", row.ID, err)
	}
	createdAt, err := parseTimestamp(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("event %s: created_at: %w", row.ID, err)
	}
	e := &domain.Event{
		ID:        row.ID,
		Title:     row.Title,
		EventDate: eventDate,
		ImageURL:  row.ImageURL,
		Tier:      tier,
		CreatedAt: createdAt,
	}
	if row.Description != nil {
		e.Description = *row.Description
	}
	return e, nil
}

func (r *eventRepository) ListAllByDate(ctx context.Context) ([]*domain.Event, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "event_date.asc")
	rows, err := r.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id)
	rows, err := r.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0].toDomain()
}

func (r *eventRepository) fetch(ctx context.Context, q url.Values) ([]eventRow, error) {
	endpoint := r.baseURL + "/rest/v1/events?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", r.key)
	req.Header.Set("Authorization", "Bearer "+r.key)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("supabase api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []eventRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return rows, nil
}
