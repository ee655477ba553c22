// Package social fans an article out to external social platforms.
// Posting is best-effort: each platform is dispatched independently and
// a failure on one never cancels or blocks the others.
package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/rs/zerolog"
)

// postRequest is the payload each platform endpoint accepts. The
// endpoint renders the image overlay and performs the actual posting.
type postRequest struct {
	ArticleID string `json:"article_id"`
	ImageURL  string `json:"image_url"`
	Caption   string `json:"caption"`
	ImageText string `json:"image_text,omitempty"`
	TextColor string `json:"text_color"`
}

// postResponse is the payload a platform endpoint returns on success
type postResponse struct {
	PostID  string `json:"post_id"`
	PostURL string `json:"post_url"`
}

// Result is one platform's cross-posting outcome
type Result struct {
	Platform models.Platform
	PostID   string
	PostURL  string
	PostedAt time.Time
	Err      error
}

// Poster fans an article out to all applicable platforms
type Poster interface {
	PostAll(ctx context.Context, article *models.Article) []Result
}

// httpPoster is the concrete implementation of Poster
type httpPoster struct {
	cfg    *config.SocialConfig
	client *http.Client
	log    zerolog.Logger
}

// NewPoster creates a Poster backed by the configured platform endpoints
func NewPoster(cfg *config.SocialConfig, log zerolog.Logger) Poster {
	return &httpPoster{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.PostTimeout},
		log:    log.With().Str("component", "social").Logger(),
	}
}

// PostAll dispatches to every applicable platform concurrently and
// waits for all of them to settle. A platform is applicable when it is
// enabled, has a caption, and the article carries a featured image.
// Zero applicable platforms yields an empty result set.
func (p *httpPoster) PostAll(ctx context.Context, article *models.Article) []Result {
	var applicable []models.Platform
	for _, platform := range models.Platforms {
		post := article.SocialFor(platform)
		if post.Enabled && post.Caption != nil && *post.Caption != "" && hasFeaturedImage(article) {
			applicable = append(applicable, platform)
		}
	}
	if len(applicable) == 0 {
		return nil
	}

	results := make([]Result, len(applicable))
	var wg sync.WaitGroup
	for i, platform := range applicable {
		wg.Add(1)
		go func(i int, platform models.Platform) {
			defer wg.Done()
			results[i] = p.postOne(ctx, platform, article)
		}(i, platform)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			p.log.Warn().
				Err(res.Err).
				Str("platform", string(res.Platform)).
				Str("article_id", article.ID).
				Msg("Cross-post failed")
		}
	}

	return results
}

// postOne sends one platform's authenticated request
func (p *httpPoster) postOne(ctx context.Context, platform models.Platform, article *models.Article) Result {
	result := Result{Platform: platform}

	cfg := p.platformConfig(platform)
	if cfg.Endpoint == "" {
		result.Err = fmt.Errorf("no endpoint configured for %s", platform)
		return result
	}

	post := article.SocialFor(platform)
	payload := postRequest{
		ArticleID: article.ID,
		ImageURL:  *article.FeaturedImageURL,
		Caption:   *post.Caption,
		TextColor: string(post.TextColor),
	}
	if post.ImageText != nil {
		payload.ImageText = *post.ImageText
	}

	body, err := json.Marshal(payload)
	if err != nil {
		result.Err = fmt.Errorf("marshal post request: %w", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		result.Err = fmt.Errorf("build post request: %w", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		result.Err = &apperrors.HTTPError{Status: resp.StatusCode, Message: string(msg)}
		return result
	}

	var parsed postResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		result.Err = fmt.Errorf("decode post response: %w", err)
		return result
	}

	result.PostID = parsed.PostID
	result.PostURL = parsed.PostURL
	result.PostedAt = time.Now()

	p.log.Info().
		Str("platform", string(platform)).
		Str("article_id", article.ID).
		Str("post_id", result.PostID).
		Msg("Cross-post succeeded")

	return result
}

func (p *httpPoster) platformConfig(platform models.Platform) config.PlatformConfig {
	switch platform {
	case models.PlatformTwitter:
		return p.cfg.Twitter
	case models.PlatformInstagram:
		return p.cfg.Instagram
	case models.PlatformLinkedIn:
		return p.cfg.LinkedIn
	}
	return config.PlatformConfig{}
}

func hasFeaturedImage(article *models.Article) bool {
	return article.FeaturedImageURL != nil && *article.FeaturedImageURL != ""
}

// Failed returns the platforms whose posts did not succeed
func Failed(results []Result) []models.Platform {
	var failed []models.Platform
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Platform)
		}
	}
	return failed
}
