package models

import (
	"time"
)

// TextColor is the overlay text color rendered onto social images
type TextColor string

const (
	TextColorWhite TextColor = "white"
	TextColorBlack TextColor = "black"
)

// ValidTextColors defines allowed overlay text colors
var ValidTextColors = map[TextColor]bool{
	TextColorWhite: true,
	TextColorBlack: true,
}

// Platform identifies a social cross-posting target
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists all cross-posting targets in dispatch order
var Platforms = []Platform{PlatformTwitter, PlatformInstagram, PlatformLinkedIn}

// CaptionLimits holds each platform's real caption length limit
var CaptionLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformInstagram: 2200,
	PlatformLinkedIn:  3000,
}

// SlugField discriminates which language's slug column a uniqueness
// check targets
type SlugField string

const (
	SlugFieldEN SlugField = "slug"
	SlugFieldFR SlugField = "slug_fr"
)

// SocialPost holds one platform's cross-posting state on an article.
// Post ID/URL/timestamp are populated after a successful cross-post.
type SocialPost struct {
	Enabled   bool       `json:"enabled" db:"enabled"`
	Caption   *string    `json:"caption,omitempty" db:"caption"`
	ImageText *string    `json:"image_text,omitempty" db:"image_text"`
	TextColor TextColor  `json:"text_color" db:"text_color"`
	PostID    *string    `json:"post_id,omitempty" db:"post_id"`
	PostURL   *string    `json:"post_url,omitempty" db:"post_url"`
	PostedAt  *time.Time `json:"posted_at,omitempty" db:"posted_at"`
}

// Article represents an article in the system. The French half of each
// language pair is independent and may be absent.
type Article struct {
	ID string `json:"id" db:"id"`

	// Bilingual content
	Title     string  `json:"title" db:"title"`
	TitleFr   *string `json:"title_fr,omitempty" db:"title_fr"`
	Slug      string  `json:"slug" db:"slug"`
	SlugFr    *string `json:"slug_fr,omitempty" db:"slug_fr"`
	Excerpt   *string `json:"excerpt,omitempty" db:"excerpt"`
	ExcerptFr *string `json:"excerpt_fr,omitempty" db:"excerpt_fr"`
	Content   string  `json:"content" db:"content"`
	ContentFr *string `json:"content_fr,omitempty" db:"content_fr"`

	// Classification
	AuthorID   *string `json:"author_id,omitempty" db:"author_id"`
	CategoryID *string `json:"category_id,omitempty" db:"category_id"`

	// Publication state
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	Featured    bool       `json:"featured" db:"featured"`
	PinAsHero   bool       `json:"pin_as_hero" db:"pin_as_hero"`

	FeaturedImageURL *string `json:"featured_image_url,omitempty" db:"featured_image_url"`

	// SEO
	MetaTitle         *string `json:"meta_title,omitempty" db:"meta_title"`
	MetaTitleFr       *string `json:"meta_title_fr,omitempty" db:"meta_title_fr"`
	MetaDescription   *string `json:"meta_description,omitempty" db:"meta_description"`
	MetaDescriptionFr *string `json:"meta_description_fr,omitempty" db:"meta_description_fr"`
	MetaKeywords      *string `json:"meta_keywords,omitempty" db:"meta_keywords"`
	MetaKeywordsFr    *string `json:"meta_keywords_fr,omitempty" db:"meta_keywords_fr"`
	OGImageURL        *string `json:"og_image_url,omitempty" db:"og_image_url"`
	CanonicalURL      *string `json:"canonical_url,omitempty" db:"canonical_url"`
	CanonicalURLFr    *string `json:"canonical_url_fr,omitempty" db:"canonical_url_fr"`

	// Social cross-posting
	Twitter   SocialPost `json:"twitter"`
	Instagram SocialPost `json:"instagram"`
	LinkedIn  SocialPost `json:"linkedin"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SocialFor returns a pointer to the platform's post state
func (a *Article) SocialFor(p Platform) *SocialPost {
	switch p {
	case PlatformTwitter:
		return &a.Twitter
	case PlatformInstagram:
		return &a.Instagram
	case PlatformLinkedIn:
		return &a.LinkedIn
	}
	return nil
}

// SocialSubmission is one platform's section of the submission form
type SocialSubmission struct {
	Enabled   bool   `json:"enabled"`
	Caption   string `json:"caption"`
	Hashtags  string `json:"hashtags"`
	ImageText string `json:"image_text"`
	TextColor string `json:"text_color"`
}

// ArticleSubmission is the validated form payload the orchestrator
// consumes. Empty strings mean "no value"; the preparer turns them
// into NULLs before persistence.
type ArticleSubmission struct {
	ID string `json:"-"` // from URL on the update path

	Title     string `json:"title"`
	TitleFr   string `json:"title_fr"`
	Slug      string `json:"slug"`
	SlugFr    string `json:"slug_fr"`
	Excerpt   string `json:"excerpt"`
	ExcerptFr string `json:"excerpt_fr"`
	Content   string `json:"content"`
	ContentFr string `json:"content_fr"`

	AuthorID   string `json:"author_id"`
	CategoryID string `json:"category_id"`

	Published bool `json:"published"`
	Featured  bool `json:"featured"`
	PinAsHero bool `json:"pin_as_hero"`

	FeaturedImageURL string `json:"featured_image_url"`

	MetaTitle         string `json:"meta_title"`
	MetaTitleFr       string `json:"meta_title_fr"`
	MetaDescription   string `json:"meta_description"`
	MetaDescriptionFr string `json:"meta_description_fr"`
	MetaKeywords      string `json:"meta_keywords"`
	MetaKeywordsFr    string `json:"meta_keywords_fr"`
	OGImageURL        string `json:"og_image_url"`
	CanonicalURL      string `json:"canonical_url"`
	CanonicalURLFr    string `json:"canonical_url_fr"`

	Twitter   SocialSubmission `json:"twitter"`
	Instagram SocialSubmission `json:"instagram"`
	LinkedIn  SocialSubmission `json:"linkedin"`
}

// SocialFor returns a pointer to the platform's form section
func (s *ArticleSubmission) SocialFor(p Platform) *SocialSubmission {
	switch p {
	case PlatformTwitter:
		return &s.Twitter
	case PlatformInstagram:
		return &s.Instagram
	case PlatformLinkedIn:
		return &s.LinkedIn
	}
	return nil
}
