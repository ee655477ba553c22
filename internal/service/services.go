package service

import (
	"context"

	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/social"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for the article submission
// workflow and article reads
type ArticleService interface {
	Submit(ctx context.Context, sub *models.ArticleSubmission) (*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context, filter repository.ArticleFilter) ([]*models.Article, error)
	GetHero(ctx context.Context) (*models.Article, error)
	WaitForCrossPosts()
}

// SlugCheckRequest asks whether a candidate slug is free
type SlugCheckRequest struct {
	Slug      string
	Field     models.SlugField
	ExcludeID string
}

// SlugCheckResult reports availability plus alternatives when taken
type SlugCheckResult struct {
	Available   bool     `json:"available"`
	Suggestions []string `json:"suggestions,omitempty"`
	Err         error    `json:"-"`
}

// SlugService defines the interface for slug availability checks
type SlugService interface {
	CheckAvailability(ctx context.Context, req SlugCheckRequest) SlugCheckResult
	CheckLater(req SlugCheckRequest, fn func(SlugCheckResult))
}

// ReferenceData carries the admin form's dropdown sources
type ReferenceData struct {
	Authors    []*models.Author   `json:"authors"`
	Categories []*models.Category `json:"categories"`
	Events     []*models.Event    `json:"events"`
}

// ReferenceService defines the interface for reference-data loads
type ReferenceService interface {
	GetReferenceData(ctx context.Context) (*ReferenceData, error)
}

// NewsletterService defines the interface for newsletter signups
type NewsletterService interface {
	Subscribe(ctx context.Context, email, language string) (*models.NewsletterSubscriber, error)
	List(ctx context.Context) ([]*models.NewsletterSubscriber, error)
}

// Services holds all service interfaces
type Services struct {
	Article    ArticleService
	Slug       SlugService
	Reference  ReferenceService
	Newsletter NewsletterService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, poster social.Poster, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article:    newArticleService(repos, poster, log),
		Slug:       newSlugService(repos.Article, log),
		Reference:  newReferenceService(repos, log),
		Newsletter: newNewsletterService(repos.Subscriber, log),
	}
}
