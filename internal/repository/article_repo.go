package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/magazine-editorial-api/internal/database"
	"github.com/magazine-editorial-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// articleColumnList is the canonical column order shared by inserts,
// updates and scans. Keep in sync with articleValues and articleDests.
var articleColumnList = []string{
	"id", "title", "title_fr", "slug", "slug_fr", "excerpt", "excerpt_fr", "content", "content_fr",
	"author_id", "category_id", "published", "published_at", "featured", "pin_as_hero", "featured_image_url",
	"meta_title", "meta_title_fr", "meta_description", "meta_description_fr", "meta_keywords", "meta_keywords_fr",
	"og_image_url", "canonical_url", "canonical_url_fr",
	"twitter_enabled", "twitter_caption", "twitter_image_text", "twitter_text_color", "twitter_post_id", "twitter_post_url", "twitter_posted_at",
	"instagram_enabled", "instagram_caption", "instagram_image_text", "instagram_text_color", "instagram_post_id", "instagram_post_url", "instagram_posted_at",
	"linkedin_enabled", "linkedin_caption", "linkedin_image_text", "linkedin_text_color", "linkedin_post_id", "linkedin_post_url", "linkedin_posted_at",
	"created_at", "updated_at",
}

var articleColumns = strings.Join(articleColumnList, ", ")

// articleValues returns parameters in articleColumnList order
func articleValues(a *models.Article) []interface{} {
	return []interface{}{
		a.ID, a.Title, a.TitleFr, a.Slug, a.SlugFr, a.Excerpt, a.ExcerptFr, a.Content, a.ContentFr,
		a.AuthorID, a.CategoryID, a.Published, a.PublishedAt, a.Featured, a.PinAsHero, a.FeaturedImageURL,
		a.MetaTitle, a.MetaTitleFr, a.MetaDescription, a.MetaDescriptionFr, a.MetaKeywords, a.MetaKeywordsFr,
		a.OGImageURL, a.CanonicalURL, a.CanonicalURLFr,
		a.Twitter.Enabled, a.Twitter.Caption, a.Twitter.ImageText, string(a.Twitter.TextColor), a.Twitter.PostID, a.Twitter.PostURL, a.Twitter.PostedAt,
		a.Instagram.Enabled, a.Instagram.Caption, a.Instagram.ImageText, string(a.Instagram.TextColor), a.Instagram.PostID, a.Instagram.PostURL, a.Instagram.PostedAt,
		a.LinkedIn.Enabled, a.LinkedIn.Caption, a.LinkedIn.ImageText, string(a.LinkedIn.TextColor), a.LinkedIn.PostID, a.LinkedIn.PostURL, a.LinkedIn.PostedAt,
		a.CreatedAt, a.UpdatedAt,
	}
}

// articleDests returns scan destinations in articleColumnList order
func articleDests(a *models.Article) []interface{} {
	return []interface{}{
		&a.ID, &a.Title, &a.TitleFr, &a.Slug, &a.SlugFr, &a.Excerpt, &a.ExcerptFr, &a.Content, &a.ContentFr,
		&a.AuthorID, &a.CategoryID, &a.Published, &a.PublishedAt, &a.Featured, &a.PinAsHero, &a.FeaturedImageURL,
		&a.MetaTitle, &a.MetaTitleFr, &a.MetaDescription, &a.MetaDescriptionFr, &a.MetaKeywords, &a.MetaKeywordsFr,
		&a.OGImageURL, &a.CanonicalURL, &a.CanonicalURLFr,
		&a.Twitter.Enabled, &a.Twitter.Caption, &a.Twitter.ImageText, &a.Twitter.TextColor, &a.Twitter.PostID, &a.Twitter.PostURL, &a.Twitter.PostedAt,
		&a.Instagram.Enabled, &a.Instagram.Caption, &a.Instagram.ImageText, &a.Instagram.TextColor, &a.Instagram.PostID, &a.Instagram.PostURL, &a.Instagram.PostedAt,
		&a.LinkedIn.Enabled, &a.LinkedIn.Caption, &a.LinkedIn.ImageText, &a.LinkedIn.TextColor, &a.LinkedIn.PostID, &a.LinkedIn.PostURL, &a.LinkedIn.PostedAt,
		&a.CreatedAt, &a.UpdatedAt,
	}
}

// placeholders returns "$1, $2, ..., $n"
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(articleDests(&a)...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Insert creates a new article and returns the written row
func (r *articleRepo) Insert(ctx context.Context, article *models.Article) (*models.Article, error) {
	query := fmt.Sprintf(
		"INSERT INTO articles (%s) VALUES (%s) RETURNING %s",
		articleColumns, placeholders(len(articleColumnList)), articleColumns,
	)
	row := r.db.QueryRowContext(ctx, query, articleValues(article)...)
	return scanArticle(row)
}

// Update overwrites an existing article and returns the written row.
// A nil row with nil error means no article matched the ID.
func (r *articleRepo) Update(ctx context.Context, article *models.Article) (*models.Article, error) {
	sets := make([]string, 0, len(articleColumnList)-1)
	for i, col := range articleColumnList[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf(
		"UPDATE articles SET %s WHERE id = $1 RETURNING %s",
		strings.Join(sets, ", "), articleColumns,
	)
	row := r.db.QueryRowContext(ctx, query, articleValues(article)...)
	return scanArticle(row)
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves an article by its English or French slug
func (r *articleRepo) GetBySlug(ctx context.Context, field models.SlugField, slug string) (*models.Article, error) {
	if err := validSlugField(field); err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM articles WHERE %s = $1", articleColumns, string(field))
	return scanArticle(r.db.QueryRowContext(ctx, query, slug))
}

// List retrieves articles newest first
func (r *articleRepo) List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles", articleColumns)
	if filter.PublishedOnly {
		query += " WHERE published = true"
	}
	query += " ORDER BY created_at DESC"

	args := []interface{}{}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(articleDests(&a)...); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

// SlugInUse checks whether any other article already uses the slug in
// the given language column
func (r *articleRepo) SlugInUse(ctx context.Context, field models.SlugField, slug, excludeID string) (bool, error) {
	if err := validSlugField(field); err != nil {
		return false, err
	}
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM articles WHERE %s = $1 AND id <> $2)", string(field))

	var exists bool
	err := r.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists)
	return exists, err
}

// UnpinHeroExcept clears pin_as_hero on every article other than the
// given one. An empty ID unpins everything (new-article path).
func (r *articleRepo) UnpinHeroExcept(ctx context.Context, id string) error {
	query := "UPDATE articles SET pin_as_hero = false, updated_at = $2 WHERE pin_as_hero = true AND id <> $1"
	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	return err
}

// GetPinnedHero returns the currently pinned hero article, if any
func (r *articleRepo) GetPinnedHero(ctx context.Context) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE pin_as_hero = true LIMIT 1", articleColumns)
	return scanArticle(r.db.QueryRowContext(ctx, query))
}

// UpdateSocialResult records a successful cross-post for one platform
func (r *articleRepo) UpdateSocialResult(ctx context.Context, id string, platform models.Platform, postID, postURL string, postedAt time.Time) error {
	switch platform {
	case models.PlatformTwitter, models.PlatformInstagram, models.PlatformLinkedIn:
	default:
		return fmt.Errorf("unknown platform: %s", platform)
	}

	query := fmt.Sprintf(
		"UPDATE articles SET %[1]s_post_id = $2, %[1]s_post_url = $3, %[1]s_posted_at = $4, updated_at = $4 WHERE id = $1",
		string(platform),
	)
	_, err := r.db.ExecContext(ctx, query, id, postID, postURL, postedAt)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func validSlugField(field models.SlugField) error {
	if field != models.SlugFieldEN && field != models.SlugFieldFR {
		return fmt.Errorf("invalid slug field: %s", field)
	}
	return nil
}
