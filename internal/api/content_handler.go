package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-editorial-api/internal/service"
	"github.com/rs/zerolog"
)

// ContentHandler handles reference-data and newsletter endpoints
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// GetReferenceData handles GET /v1/reference-data
func (h *ContentHandler) GetReferenceData(c *gin.Context) {
	data, err := h.services.Reference.GetReferenceData(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load reference data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reference data"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// Subscribe handles POST /v1/newsletter/subscriptions
func (h *ContentHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.services.Newsletter.Subscribe(c.Request.Context(), req.Email, req.Language)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListSubscribers handles GET /v1/newsletter/subscriptions
func (h *ContentHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.services.Newsletter.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list subscribers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subscribers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribers": subs,
		"count":       len(subs),
	})
}
