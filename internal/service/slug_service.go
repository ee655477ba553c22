package service

import (
	"context"
	"time"

	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/debounce"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/slug"
	"github.com/rs/zerolog"
)

const (
	// minSlugLength short-circuits checks on fragments too short to be
	// a real slug
	minSlugLength = 2

	// checkDebounce is how long a keystroke stream must go quiet
	// before a scheduled check fires
	checkDebounce = 500 * time.Millisecond

	checkTimeout = 10 * time.Second
)

// slugService is the concrete implementation of SlugService
type slugService struct {
	articles  repository.ArticleRepository
	debouncer *debounce.Debouncer
	log       zerolog.Logger
}

// newSlugService creates a new SlugService
func newSlugService(articles repository.ArticleRepository, log zerolog.Logger) *slugService {
	return &slugService{
		articles:  articles,
		debouncer: debounce.New(checkDebounce),
		log:       log.With().Str("service", "slug").Logger(),
	}
}

// CheckAvailability reports whether any other article already uses the
// candidate slug. An unreachable check fails closed: it blocks
// submission instead of silently allowing a collision.
func (s *slugService) CheckAvailability(ctx context.Context, req SlugCheckRequest) SlugCheckResult {
	if len(req.Slug) < minSlugLength {
		return SlugCheckResult{Available: true}
	}

	field := req.Field
	if field == "" {
		field = models.SlugFieldEN
	}

	inUse, err := s.articles.SlugInUse(ctx, field, req.Slug, req.ExcludeID)
	if err != nil {
		s.log.Error().Err(err).Str("slug", req.Slug).Msg("Slug availability check failed")
		return SlugCheckResult{
			Available: false,
			Err: &apperrors.Classified{
				Kind:      apperrors.KindValidation,
				Message:   "Could not verify slug availability",
				Retryable: false,
				Suggestions: []string{
					"Try a different slug",
					"Retry the check in a moment",
				},
			},
		}
	}

	if inUse {
		return SlugCheckResult{
			Available:   false,
			Suggestions: slug.Suggestions(req.Slug, time.Now()),
		}
	}

	return SlugCheckResult{Available: true}
}

// CheckLater schedules a debounced check for interactive callers
// feeding keystrokes: each call supersedes any pending one, so only the
// last candidate in a burst is actually queried.
func (s *slugService) CheckLater(req SlugCheckRequest, fn func(SlugCheckResult)) {
	s.debouncer.Schedule(func() {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		fn(s.CheckAvailability(ctx, req))
	})
}
