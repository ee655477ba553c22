package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/media"
	"github.com/rs/zerolog"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// MediaHandler handles image uploads
type MediaHandler struct {
	storage media.Storage
	cfg     *config.Config
	log     zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler. storage may be nil when
// Supabase is not configured; uploads then return 503.
func NewMediaHandler(storage media.Storage, cfg *config.Config, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{
		storage: storage,
		cfg:     cfg,
		log:     log.With().Str("handler", "media").Logger(),
	}
}

// UploadImage handles POST /v1/media
func (h *MediaHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	if header.Size > h.cfg.Media.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Media.MaxSize/(1024*1024)),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be a jpg, png, webp or gif image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	url, err := h.storage.UploadImage(c.Request.Context(), header.Filename, contentType, file)
	if err != nil {
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("Image upload failed")
		writeError(c, err)
		return
	}

	h.log.Info().
		Str("filename", header.Filename).
		Int64("size_bytes", header.Size).
		Msg("Image uploaded")

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
