package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tiershowcase/internal/domain"
)

// pqInvalidTextRepresentation is raised when a malformed UUID is compared against a uuid column.
const pqInvalidTextRepresentation = "22P02"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, description, event_date, image_url, tier, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, imageNull, tierNull sql.NullString
	if err := s.Scan(&e.ID, &e.Title, &descNull, &e.EventDate, &imageNull, &tierNull, &e.CreatedAt); err != nil {
		return nil, err
	}
	// NULL tier is malformed data, same as an unknown value.
	tier, err := domain.ParseTier(tierNull.String)
	if !tierNull.Valid || err != nil {
		return nil, &domain.MalformedTierError{EventID: e.ID, Value: tierNull.String}
	}
	e.Tier = tier
	if descNull.Valid {
		e.Description = descNull.String
	}
	if imageNull.Valid {
		e.ImageURL = &imageNull.String
	}
	return e, nil
}

func (r *eventRepository) ListAllByDate(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY event_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqInvalidTextRepresentation {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
