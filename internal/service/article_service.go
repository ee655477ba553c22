package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/social"
	"github.com/magazine-editorial-api/internal/validation"
	"github.com/rs/zerolog"
)

// crossPostTimeout bounds the detached fan-out after a save
const crossPostTimeout = 2 * time.Minute

// articleService is the concrete implementation of ArticleService. It
// sequences validation, hero unpinning, record preparation, the
// persistence write, and the detached social fan-out.
type articleService struct {
	repos  *repository.Repositories
	hero   *heroCoordinator
	poster social.Poster
	log    zerolog.Logger

	// tracks in-flight detached cross-posts so tests and shutdown can
	// wait for them
	crossPosts sync.WaitGroup
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, poster social.Poster, log zerolog.Logger) *articleService {
	return &articleService{
		repos:  repos,
		hero:   newHeroCoordinator(repos.Article, log),
		poster: poster,
		log:    log.With().Str("service", "article").Logger(),
	}
}

// Submit runs one create-or-update submission. The returned error is
// either validation.Errors (field-level) or a classified error; the
// caller resolves once persistence settles and cross-posting continues
// detached.
func (s *articleService) Submit(ctx context.Context, sub *models.ArticleSubmission) (*models.Article, error) {
	validator := validation.NewValidator()
	s.loadFKCaches(ctx, validator)

	if errs := validator.ValidateSubmission(sub); len(errs) > 0 {
		return nil, errs
	}

	// The unpin must land before the article's own write so a reader
	// never sees two pinned heroes from a settled state
	if err := s.hero.EnsureSinglePin(ctx, sub.PinAsHero, sub.ID); err != nil {
		return nil, apperrors.Classify(err)
	}

	var existing *models.Article
	if sub.ID != "" {
		var err error
		existing, err = s.repos.Article.GetByID(ctx, sub.ID)
		if err != nil {
			return nil, apperrors.Classify(err)
		}
		if existing == nil {
			return nil, &apperrors.Classified{
				Kind:      apperrors.KindValidation,
				Message:   "The article you are editing no longer exists",
				Retryable: false,
				Suggestions: []string{
					"Refresh the article list",
					"Create the article again if it was deleted",
				},
			}
		}
	}

	id := sub.ID
	if id == "" {
		id = uuid.New().String()
	}
	record := PrepareArticle(id, sub, existing, time.Now())

	var saved *models.Article
	var err error
	if existing == nil {
		saved, err = s.repos.Article.Insert(ctx, record)
	} else {
		saved, err = s.repos.Article.Update(ctx, record)
	}
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if saved == nil {
		// Defensive: the store reported success but returned nothing
		return nil, &apperrors.Classified{
			Kind:      apperrors.KindUnknown,
			Message:   "The save returned no data",
			Retryable: false,
			Suggestions: []string{
				"Reload the article to check whether it was saved",
				"Try again",
			},
		}
	}

	s.log.Info().
		Str("article_id", saved.ID).
		Str("slug", saved.Slug).
		Bool("published", saved.Published).
		Bool("created", existing == nil).
		Msg("Article saved")

	// Detached fan-out: the submission result is already settled and
	// cross-post failures only ever surface as warnings
	if saved.Published && anySocialEnabled(saved) {
		s.crossPosts.Add(1)
		go func() {
			defer s.crossPosts.Done()
			s.crossPost(saved)
		}()
	}

	return saved, nil
}

// Get retrieves one article
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return s.repos.Article.GetByID(ctx, id)
}

// List retrieves articles
func (s *articleService) List(ctx context.Context, filter repository.ArticleFilter) ([]*models.Article, error) {
	return s.repos.Article.List(ctx, filter)
}

// GetHero retrieves the pinned hero article, if any
func (s *articleService) GetHero(ctx context.Context) (*models.Article, error) {
	return s.repos.Article.GetPinnedHero(ctx)
}

// loadFKCaches primes the validator with existing author/category IDs.
// A failed load skips the existence check rather than blocking the
// submission; the database FK constraints still back it up.
func (s *articleService) loadFKCaches(ctx context.Context, validator *validation.Validator) {
	authorIDs, err := s.repos.Author.GetAllIDs(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to load author IDs for validation")
	} else {
		validator.SetAuthorIDCache(authorIDs)
	}

	categoryIDs, err := s.repos.Category.GetAllIDs(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to load category IDs for validation")
	} else {
		validator.SetCategoryIDCache(categoryIDs)
	}
}

// crossPost runs the best-effort fan-out and records per-platform
// outcomes. It runs off the request context: closing the form does not
// abort in-flight posting.
func (s *articleService) crossPost(article *models.Article) {
	ctx, cancel := context.WithTimeout(context.Background(), crossPostTimeout)
	defer cancel()

	results := s.poster.PostAll(ctx, article)
	if len(results) == 0 {
		return
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if err := s.repos.Article.UpdateSocialResult(ctx, article.ID, res.Platform, res.PostID, res.PostURL, res.PostedAt); err != nil {
			s.log.Error().
				Err(err).
				Str("platform", string(res.Platform)).
				Str("article_id", article.ID).
				Msg("Failed to record cross-post result")
		}
	}

	if failed := social.Failed(results); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, p := range failed {
			names[i] = string(p)
		}
		s.log.Warn().
			Strs("platforms", names).
			Str("article_id", article.ID).
			Msg("Cross-posting partially failed")
		return
	}

	s.log.Info().
		Int("platforms", len(results)).
		Str("article_id", article.ID).
		Msg("Cross-posting completed")
}

// WaitForCrossPosts blocks until detached cross-posts finish. Used by
// graceful shutdown.
func (s *articleService) WaitForCrossPosts() {
	s.crossPosts.Wait()
}

func anySocialEnabled(a *models.Article) bool {
	for _, platform := range models.Platforms {
		if a.SocialFor(platform).Enabled {
			return true
		}
	}
	return false
}
