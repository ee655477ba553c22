package service

import (
	"context"
	"fmt"

	"github.com/magazine-editorial-api/internal/repository"
	"github.com/rs/zerolog"
)

// heroCoordinator maintains the at-most-one-pinned-hero invariant.
// The unpin and the article's own write are two independent statements,
// so the invariant is best-effort under eventual consistency rather
// than a transactional guarantee.
type heroCoordinator struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newHeroCoordinator(articles repository.ArticleRepository, log zerolog.Logger) *heroCoordinator {
	return &heroCoordinator{
		articles: articles,
		log:      log.With().Str("component", "hero").Logger(),
	}
}

// EnsureSinglePin unpins every other article before articleID takes the
// hero slot. No-op when shouldPin is false. A failed unpin aborts the
// whole submission: letting the new pin land while others remain would
// break the invariant.
func (h *heroCoordinator) EnsureSinglePin(ctx context.Context, shouldPin bool, articleID string) error {
	if !shouldPin {
		return nil
	}

	if err := h.articles.UnpinHeroExcept(ctx, articleID); err != nil {
		return fmt.Errorf("failed to unpin existing hero articles: %w", err)
	}

	h.log.Info().Str("article_id", articleID).Msg("Unpinned competing hero articles")
	return nil
}
