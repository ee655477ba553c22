package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// CreateArticle handles POST /v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var sub models.ArticleSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	sub.ID = ""

	article, err := h.services.Article.Submit(c.Request.Context(), &sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PUT /v1/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	var sub models.ArticleSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	sub.ID = id

	article, err := h.services.Article.Submit(c.Request.Context(), &sub)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// ListArticles handles GET /v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := repository.ArticleFilter{
		PublishedOnly: c.Query("published") == "true",
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	articles, err := h.services.Article.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// GetArticle handles GET /v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("article_id", c.Param("id")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetHeroArticle handles GET /v1/hero-article
func (h *ArticleHandler) GetHeroArticle(c *gin.Context) {
	article, err := h.services.Article.GetHero(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get hero article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get hero article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hero article pinned"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetSocialStatus handles GET /v1/articles/:id/social-status
// Cross-posting is detached from the save, so the admin UI polls this
// endpoint to show per-platform outcomes.
func (h *ArticleHandler) GetSocialStatus(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("article_id", c.Param("id")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	platforms := gin.H{}
	for _, platform := range models.Platforms {
		post := article.SocialFor(platform)
		platforms[string(platform)] = gin.H{
			"enabled":   post.Enabled,
			"post_id":   post.PostID,
			"post_url":  post.PostURL,
			"posted_at": post.PostedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"article_id": article.ID,
		"platforms":  platforms,
	})
}

// CheckSlugAvailability handles GET /v1/slug-availability
func (h *ArticleHandler) CheckSlugAvailability(c *gin.Context) {
	candidate := c.Query("slug")
	if candidate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug parameter is required"})
		return
	}

	field := models.SlugField(c.DefaultQuery("field", string(models.SlugFieldEN)))
	if field != models.SlugFieldEN && field != models.SlugFieldFR {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field must be 'slug' or 'slug_fr'"})
		return
	}

	result := h.services.Slug.CheckAvailability(c.Request.Context(), service.SlugCheckRequest{
		Slug:      candidate,
		Field:     field,
		ExcludeID: c.Query("exclude_id"),
	})
	if result.Err != nil {
		writeError(c, result.Err)
		return
	}

	c.JSON(http.StatusOK, result)
}
