package validation

import (
	"strings"
	"testing"

	"github.com/magazine-editorial-api/internal/models"
)

const (
	testAuthorID   = "7b6d3c1e-5f7a-4a2b-9c8d-1e2f3a4b5c6d"
	testCategoryID = "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"
)

func validSubmission() *models.ArticleSubmission {
	return &models.ArticleSubmission{
		Title:      "Kigali's Bus Reform",
		Content:    "The city is rethinking its transit network.",
		AuthorID:   testAuthorID,
		CategoryID: testCategoryID,
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(sub *models.ArticleSubmission)
		wantField string
	}{
		{
			name:   "valid submission",
			modify: func(sub *models.ArticleSubmission) {},
		},
		{
			name:      "missing title",
			modify:    func(sub *models.ArticleSubmission) { sub.Title = "" },
			wantField: "title",
		},
		{
			name:      "title too long",
			modify:    func(sub *models.ArticleSubmission) { sub.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantField: "title",
		},
		{
			name:      "missing content",
			modify:    func(sub *models.ArticleSubmission) { sub.Content = "" },
			wantField: "content",
		},
		{
			name:      "missing author",
			modify:    func(sub *models.ArticleSubmission) { sub.AuthorID = "" },
			wantField: "author_id",
		},
		{
			name:      "author id not a uuid",
			modify:    func(sub *models.ArticleSubmission) { sub.AuthorID = "not-a-uuid" },
			wantField: "author_id",
		},
		{
			name:      "category id not a uuid",
			modify:    func(sub *models.ArticleSubmission) { sub.CategoryID = "42" },
			wantField: "category_id",
		},
		{
			name:      "slug not kebab case",
			modify:    func(sub *models.ArticleSubmission) { sub.Slug = "Not A Slug!" },
			wantField: "slug",
		},
		{
			name:      "french slug not kebab case",
			modify:    func(sub *models.ArticleSubmission) { sub.SlugFr = "ÉDUCATION" },
			wantField: "slug_fr",
		},
		{
			name:      "french title with no derivable slug",
			modify:    func(sub *models.ArticleSubmission) { sub.TitleFr = "???" },
			wantField: "slug_fr",
		},
		{
			name:   "french title with derivable slug",
			modify: func(sub *models.ArticleSubmission) { sub.TitleFr = "La réforme des bus" },
		},
		{
			name:      "excerpt too long",
			modify:    func(sub *models.ArticleSubmission) { sub.Excerpt = strings.Repeat("x", MaxExcerptLength+1) },
			wantField: "excerpt",
		},
		{
			name: "meta description too long",
			modify: func(sub *models.ArticleSubmission) {
				sub.MetaDescription = strings.Repeat("x", MaxMetaDescription+1)
			},
			wantField: "meta_description",
		},
		{
			name:      "featured image url invalid",
			modify:    func(sub *models.ArticleSubmission) { sub.FeaturedImageURL = "not a url" },
			wantField: "featured_image_url",
		},
		{
			name:      "canonical url missing scheme",
			modify:    func(sub *models.ArticleSubmission) { sub.CanonicalURL = "example.com/articles/x" },
			wantField: "canonical_url",
		},
		{
			name: "valid https url accepted",
			modify: func(sub *models.ArticleSubmission) {
				sub.FeaturedImageURL = "https://cdn.example.com/hero.jpg"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.modify(sub)

			errs := NewValidator().ValidateSubmission(sub)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.HasField(tt.wantField) {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateSubmissionSocial(t *testing.T) {
	tests := []struct {
		name      string
		social    models.SocialSubmission
		platform  models.Platform
		wantField string
	}{
		{
			name:      "enabled without caption",
			social:    models.SocialSubmission{Enabled: true},
			platform:  models.PlatformInstagram,
			wantField: "instagram_caption",
		},
		{
			name:      "enabled with whitespace caption",
			social:    models.SocialSubmission{Enabled: true, Caption: "   "},
			platform:  models.PlatformTwitter,
			wantField: "twitter_caption",
		},
		{
			name:     "disabled without caption is fine",
			social:   models.SocialSubmission{},
			platform: models.PlatformTwitter,
		},
		{
			name: "caption plus hashtags over twitter limit",
			social: models.SocialSubmission{
				Enabled:  true,
				Caption:  strings.Repeat("a", 270),
				Hashtags: "#transport #kigali",
			},
			platform:  models.PlatformTwitter,
			wantField: "twitter_caption",
		},
		{
			name: "same length fits linkedin",
			social: models.SocialSubmission{
				Enabled:  true,
				Caption:  strings.Repeat("a", 270),
				Hashtags: "#transport #kigali",
			},
			platform: models.PlatformLinkedIn,
		},
		{
			name:      "invalid text color",
			social:    models.SocialSubmission{TextColor: "red"},
			platform:  models.PlatformLinkedIn,
			wantField: "linkedin_text_color",
		},
		{
			name:     "black text color accepted",
			social:   models.SocialSubmission{Enabled: true, Caption: "New story out now", TextColor: "black"},
			platform: models.PlatformInstagram,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			*sub.SocialFor(tt.platform) = tt.social

			errs := NewValidator().ValidateSubmission(sub)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.HasField(tt.wantField) {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateSubmissionFKCaches(t *testing.T) {
	v := NewValidator()
	v.SetAuthorIDCache([]string{testAuthorID})
	v.SetCategoryIDCache([]string{testCategoryID})

	sub := validSubmission()
	if errs := v.ValidateSubmission(sub); len(errs) != 0 {
		t.Fatalf("cached IDs should validate, got %v", errs)
	}

	sub.AuthorID = "11111111-2222-3333-4444-555555555555"
	errs := v.ValidateSubmission(sub)
	if !errs.HasField("author_id") {
		t.Errorf("expected unknown author to fail against the cache, got %v", errs)
	}
}

func TestValidateSubmissionEmptyCacheSkipsFKCheck(t *testing.T) {
	// Reference data can be unavailable; an empty cache must not reject
	// well-formed IDs.
	sub := validSubmission()
	if errs := NewValidator().ValidateSubmission(sub); len(errs) != 0 {
		t.Errorf("expected no errors with empty caches, got %v", errs)
	}
}

func TestValidateSubscriber(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		language  string
		wantField string
	}{
		{"valid", "reader@example.com", "en", ""},
		{"valid french", "lecteur@example.fr", "fr", ""},
		{"empty language defaults later", "reader@example.com", "", ""},
		{"missing email", "", "en", "email"},
		{"malformed email", "not-an-email", "en", "email"},
		{"unsupported language", "reader@example.com", "de", "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewValidator().ValidateSubscriber(tt.email, tt.language)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.HasField(tt.wantField) {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestErrorsError(t *testing.T) {
	errs := Errors{
		{Field: "title", Message: "title is required"},
		{Field: "content", Message: "content is required"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "content") {
		t.Errorf("error message should mention failing fields, got %q", msg)
	}
}
