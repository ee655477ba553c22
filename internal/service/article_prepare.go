package service

import (
	"strings"
	"time"

	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/slug"
)

// PrepareArticle normalizes a validated submission into a
// persistence-ready record. Pure transform: no I/O, no error cases.
// existing is nil on the create path.
//
// Rules:
//   - slugs fall back to ones generated from the matching title
//   - empty-string optionals become NULL, never empty string
//   - captions are stored as caption + hashtags, trimmed
//   - overlay text colors default to white
//   - published_at is set once, on the write that first publishes, and
//     a stored first-published timestamp is never reset or cleared
//   - updated_at is refreshed on every prepare
func PrepareArticle(id string, sub *models.ArticleSubmission, existing *models.Article, now time.Time) *models.Article {
	a := &models.Article{
		ID:        id,
		Title:     sub.Title,
		TitleFr:   nullable(sub.TitleFr),
		Slug:      sub.Slug,
		SlugFr:    nullable(sub.SlugFr),
		Excerpt:   nullable(sub.Excerpt),
		ExcerptFr: nullable(sub.ExcerptFr),
		Content:   sub.Content,
		ContentFr: nullable(sub.ContentFr),

		AuthorID:   nullable(sub.AuthorID),
		CategoryID: nullable(sub.CategoryID),

		Published: sub.Published,
		Featured:  sub.Featured,
		PinAsHero: sub.PinAsHero,

		FeaturedImageURL: nullable(sub.FeaturedImageURL),

		MetaTitle:         nullable(sub.MetaTitle),
		MetaTitleFr:       nullable(sub.MetaTitleFr),
		MetaDescription:   nullable(sub.MetaDescription),
		MetaDescriptionFr: nullable(sub.MetaDescriptionFr),
		MetaKeywords:      nullable(sub.MetaKeywords),
		MetaKeywordsFr:    nullable(sub.MetaKeywordsFr),
		OGImageURL:        nullable(sub.OGImageURL),
		CanonicalURL:      nullable(sub.CanonicalURL),
		CanonicalURLFr:    nullable(sub.CanonicalURLFr),

		UpdatedAt: now,
	}

	// Slug fallbacks derived from titles
	if a.Slug == "" {
		a.Slug = slug.Generate(sub.Title)
	}
	if a.SlugFr == nil && sub.TitleFr != "" {
		a.SlugFr = nullable(slug.Generate(sub.TitleFr))
	}

	// First-published timestamp is preserved across later writes,
	// including unpublish
	if existing != nil && existing.PublishedAt != nil {
		a.PublishedAt = existing.PublishedAt
	} else if sub.Published {
		publishedAt := now
		a.PublishedAt = &publishedAt
	}

	if existing != nil {
		a.CreatedAt = existing.CreatedAt
	} else {
		a.CreatedAt = now
	}

	for _, platform := range models.Platforms {
		prepareSocial(a.SocialFor(platform), sub.SocialFor(platform), existingSocial(existing, platform))
	}

	return a
}

// prepareSocial normalizes one platform's section, carrying over any
// previously recorded post outcome (not part of the form)
func prepareSocial(out *models.SocialPost, in *models.SocialSubmission, prev *models.SocialPost) {
	out.Enabled = in.Enabled
	out.Caption = nullable(combineCaption(in.Caption, in.Hashtags))
	out.ImageText = nullable(strings.TrimSpace(in.ImageText))

	out.TextColor = models.TextColor(in.TextColor)
	if out.TextColor == "" {
		out.TextColor = models.TextColorWhite
	}

	if prev != nil {
		out.PostID = prev.PostID
		out.PostURL = prev.PostURL
		out.PostedAt = prev.PostedAt
	}
}

// combineCaption joins caption and hashtags the way they are posted
func combineCaption(caption, hashtags string) string {
	return strings.TrimSpace(strings.TrimSpace(caption) + " " + strings.TrimSpace(hashtags))
}

func existingSocial(existing *models.Article, platform models.Platform) *models.SocialPost {
	if existing == nil {
		return nil
	}
	return existing.SocialFor(platform)
}

// nullable maps empty strings to explicit absence
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
