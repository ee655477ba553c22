package repository

import (
	"context"

	"github.com/magazine-editorial-api/internal/database"
	"github.com/magazine-editorial-api/internal/models"
)

// eventRepo is the concrete implementation of EventRepository
type eventRepo struct {
	db *database.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *database.DB) EventRepository {
	return &eventRepo{db: db}
}

// List retrieves events ordered by start time
func (r *eventRepo) List(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	query := `
		SELECT id, title, title_fr, description, description_fr, location, starts_at, ends_at, created_at, updated_at
		FROM events
	`
	if upcomingOnly {
		query += " WHERE starts_at >= NOW()"
	}
	query += " ORDER BY starts_at"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.Title, &e.TitleFr, &e.Description, &e.DescriptionFr,
			&e.Location, &e.StartsAt, &e.EndsAt, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

// Count returns the total number of events
func (r *eventRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&count)
	return count, err
}
