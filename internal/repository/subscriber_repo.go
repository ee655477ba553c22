package repository

import (
	"context"
	"strings"

	"github.com/magazine-editorial-api/internal/database"
	"github.com/magazine-editorial-api/internal/models"
)

// subscriberRepo is the concrete implementation of SubscriberRepository
type subscriberRepo struct {
	db *database.DB
}

// NewSubscriberRepo creates a new subscriber repository
func NewSubscriberRepo(db *database.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Insert creates a new newsletter subscriber
func (r *subscriberRepo) Insert(ctx context.Context, sub *models.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, language, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, sub.ID, strings.ToLower(sub.Email), sub.Language, sub.CreatedAt)
	return err
}

// List retrieves all subscribers newest first
func (r *subscriberRepo) List(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, language, created_at
		FROM newsletter_subscribers ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.NewsletterSubscriber
	for rows.Next() {
		var s models.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Language, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// EmailExists checks if an email is already subscribed
func (r *subscriberRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM newsletter_subscribers WHERE email = $1)",
		strings.ToLower(email),
	).Scan(&exists)
	return exists, err
}

// Count returns the total number of subscribers
func (r *subscriberRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM newsletter_subscribers").Scan(&count)
	return count, err
}
