package repository

import (
	"context"
	"time"

	"github.com/magazine-editorial-api/internal/database"
	"github.com/magazine-editorial-api/internal/models"
)

// ArticleFilter narrows article listings
type ArticleFilter struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Insert(ctx context.Context, article *models.Article) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, field models.SlugField, slug string) (*models.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error)
	SlugInUse(ctx context.Context, field models.SlugField, slug, excludeID string) (bool, error)
	UnpinHeroExcept(ctx context.Context, id string) error
	GetPinnedHero(ctx context.Context) (*models.Article, error)
	UpdateSocialResult(ctx context.Context, id string, platform models.Platform, postID, postURL string, postedAt time.Time) error
	Count(ctx context.Context) (int, error)
}

// AuthorRepository defines the interface for author data operations
type AuthorRepository interface {
	List(ctx context.Context) ([]*models.Author, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetAllIDs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetAllIDs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	List(ctx context.Context, upcomingOnly bool) ([]*models.Event, error)
	Count(ctx context.Context) (int, error)
}

// SubscriberRepository defines the interface for newsletter subscriber
// data operations
type SubscriberRepository interface {
	Insert(ctx context.Context, sub *models.NewsletterSubscriber) error
	List(ctx context.Context) ([]*models.NewsletterSubscriber, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article    ArticleRepository
	Author     AuthorRepository
	Category   CategoryRepository
	Event      EventRepository
	Subscriber SubscriberRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:    NewArticleRepo(db),
		Author:     NewAuthorRepo(db),
		Category:   NewCategoryRepo(db),
		Event:      NewEventRepo(db),
		Subscriber: NewSubscriberRepo(db),
	}
}
