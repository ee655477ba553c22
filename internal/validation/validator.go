package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/slug"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Field length limits
const (
	MaxTitleLength     = 200
	MaxContentLength   = 50000
	MaxExcerptLength   = 300
	MaxMetaDescription = 160
	MaxSubscriberEmail = 254
)

// Validator provides validation methods with FK existence caches
type Validator struct {
	authorIDCache   map[string]bool
	categoryIDCache map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		authorIDCache:   make(map[string]bool),
		categoryIDCache: make(map[string]bool),
	}
}

// SetAuthorIDCache sets the cache of existing author IDs for FK validation
func (v *Validator) SetAuthorIDCache(ids []string) {
	for _, id := range ids {
		v.authorIDCache[id] = true
	}
}

// SetCategoryIDCache sets the cache of existing category IDs for FK validation
func (v *Validator) SetCategoryIDCache(ids []string) {
	for _, id := range ids {
		v.categoryIDCache[id] = true
	}
}

// ValidateSubmission validates an article submission payload.
// Validation runs before any persistence attempt; a non-empty result
// blocks the submission.
func (v *Validator) ValidateSubmission(sub *models.ArticleSubmission) Errors {
	var errs Errors

	// Title
	if sub.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(sub.Title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength)})
	}

	// Content
	if sub.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	} else if len(sub.Content) > MaxContentLength {
		errs = append(errs, FieldError{Field: "content", Message: fmt.Sprintf("content must be at most %d characters", MaxContentLength)})
	}

	// Author (FK)
	if sub.AuthorID == "" {
		errs = append(errs, FieldError{Field: "author_id", Message: "author_id is required"})
	} else if !isValidUUID(sub.AuthorID) {
		errs = append(errs, FieldError{Field: "author_id", Message: "invalid UUID format", Value: sub.AuthorID})
	} else if len(v.authorIDCache) > 0 && !v.authorIDCache[sub.AuthorID] {
		errs = append(errs, FieldError{Field: "author_id", Message: "referenced author does not exist", Value: sub.AuthorID})
	}

	// Category (FK)
	if sub.CategoryID == "" {
		errs = append(errs, FieldError{Field: "category_id", Message: "category_id is required"})
	} else if !isValidUUID(sub.CategoryID) {
		errs = append(errs, FieldError{Field: "category_id", Message: "invalid UUID format", Value: sub.CategoryID})
	} else if len(v.categoryIDCache) > 0 && !v.categoryIDCache[sub.CategoryID] {
		errs = append(errs, FieldError{Field: "category_id", Message: "referenced category does not exist", Value: sub.CategoryID})
	}

	// Slugs must be kebab-case when supplied
	if sub.Slug != "" && !slugRegex.MatchString(sub.Slug) {
		errs = append(errs, FieldError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: sub.Slug})
	}
	if sub.SlugFr != "" && !slugRegex.MatchString(sub.SlugFr) {
		errs = append(errs, FieldError{Field: "slug_fr", Message: "slug_fr must be kebab-case (lowercase letters, numbers, hyphens)", Value: sub.SlugFr})
	}

	// A French title needs a derivable French slug
	if sub.TitleFr != "" && sub.SlugFr == "" && slug.Generate(sub.TitleFr) == "" {
		errs = append(errs, FieldError{Field: "slug_fr", Message: "slug_fr is required when it cannot be derived from title_fr"})
	}

	// SEO display bounds
	if len(sub.Excerpt) > MaxExcerptLength {
		errs = append(errs, FieldError{Field: "excerpt", Message: fmt.Sprintf("excerpt must be at most %d characters", MaxExcerptLength)})
	}
	if len(sub.ExcerptFr) > MaxExcerptLength {
		errs = append(errs, FieldError{Field: "excerpt_fr", Message: fmt.Sprintf("excerpt_fr must be at most %d characters", MaxExcerptLength)})
	}
	if len(sub.MetaDescription) > MaxMetaDescription {
		errs = append(errs, FieldError{Field: "meta_description", Message: fmt.Sprintf("meta_description must be at most %d characters", MaxMetaDescription)})
	}
	if len(sub.MetaDescriptionFr) > MaxMetaDescription {
		errs = append(errs, FieldError{Field: "meta_description_fr", Message: fmt.Sprintf("meta_description_fr must be at most %d characters", MaxMetaDescription)})
	}

	// URL fields
	urlFields := map[string]string{
		"featured_image_url": sub.FeaturedImageURL,
		"og_image_url":       sub.OGImageURL,
		"canonical_url":      sub.CanonicalURL,
		"canonical_url_fr":   sub.CanonicalURLFr,
	}
	for field, value := range urlFields {
		if value != "" && !isValidHTTPURL(value) {
			errs = append(errs, FieldError{Field: field, Message: "must be a valid http(s) URL", Value: value})
		}
	}

	// Per-platform social sections
	for _, platform := range models.Platforms {
		errs = append(errs, v.validateSocial(platform, sub.SocialFor(platform))...)
	}

	return errs
}

// validateSocial checks one platform's form section. An enabled platform
// must carry a caption within the platform's real limit.
func (v *Validator) validateSocial(platform models.Platform, s *models.SocialSubmission) Errors {
	var errs Errors
	prefix := string(platform)

	caption := strings.TrimSpace(s.Caption)
	if s.Enabled && caption == "" {
		errs = append(errs, FieldError{Field: prefix + "_caption", Message: "caption is required when cross-posting is enabled"})
	}

	limit := models.CaptionLimits[platform]
	full := combinedCaptionLength(s.Caption, s.Hashtags)
	if full > limit {
		errs = append(errs, FieldError{
			Field:   prefix + "_caption",
			Message: fmt.Sprintf("caption and hashtags must be at most %d characters (has %d)", limit, full),
		})
	}

	if s.TextColor != "" && !models.ValidTextColors[models.TextColor(s.TextColor)] {
		errs = append(errs, FieldError{Field: prefix + "_text_color", Message: "text color must be 'white' or 'black'", Value: s.TextColor})
	}

	return errs
}

// ValidateSubscriber validates a newsletter signup
func (v *Validator) ValidateSubscriber(email, language string) Errors {
	var errs Errors

	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if len(email) > MaxSubscriberEmail || !emailRegex.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email format", Value: email})
	}

	if language != "" && !models.ValidLanguages[language] {
		errs = append(errs, FieldError{Field: "language", Message: "language must be 'en' or 'fr'", Value: language})
	}

	return errs
}

// combinedCaptionLength measures the caption as posted: caption plus
// hashtags joined by a space, trimmed
func combinedCaptionLength(caption, hashtags string) int {
	full := strings.TrimSpace(strings.TrimSpace(caption) + " " + strings.TrimSpace(hashtags))
	return len([]rune(full))
}

// isValidUUID checks if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func isValidHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
