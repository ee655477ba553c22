package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/media"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, storage media.Storage, repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	contentHandler := NewContentHandler(services, log)
	mediaHandler := NewMediaHandler(storage, cfg, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(repos))

	// API v1
	v1 := router.Group("/v1")
	{
		// Article submission workflow
		articles := v1.Group("/articles")
		{
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.PUT("/:id", articleHandler.UpdateArticle)
			articles.GET("/:id/social-status", articleHandler.GetSocialStatus)
		}
		v1.GET("/slug-availability", articleHandler.CheckSlugAvailability)
		v1.GET("/hero-article", articleHandler.GetHeroArticle)

		// Admin form data sources
		v1.GET("/reference-data", contentHandler.GetReferenceData)

		// Newsletter
		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("/subscriptions", contentHandler.Subscribe)
			newsletter.GET("/subscriptions", contentHandler.ListSubscribers)
		}

		// Media uploads
		v1.POST("/media", mediaHandler.UploadImage)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "magazine-editorial-api",
	})
}

// metricsHandler returns entity counts
func metricsHandler(repos *repository.Repositories) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		articles, _ := repos.Article.Count(ctx)
		authors, _ := repos.Author.Count(ctx)
		categories, _ := repos.Category.Count(ctx)
		events, _ := repos.Event.Count(ctx)
		subscribers, _ := repos.Subscriber.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"articles":    articles,
				"authors":     authors,
				"categories":  categories,
				"events":      events,
				"subscribers": subscribers,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
