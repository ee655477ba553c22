package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/validation"
)

// writeError renders a submission failure. Field-level validation
// errors get a 422 with per-field detail; everything else is classified
// and rendered with its kind, retryability and suggestions so the
// admin UI can offer a Retry affordance.
func writeError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"kind":   apperrors.KindValidation,
			"fields": fieldErrs,
		})
		return
	}

	classified := apperrors.Classify(err)
	c.JSON(statusForKind(classified.Kind), gin.H{
		"error":       classified.Message,
		"kind":        classified.Kind,
		"retryable":   classified.Retryable,
		"suggestions": classified.Suggestions,
	})
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusUnprocessableEntity
	case apperrors.KindAuthentication:
		return http.StatusUnauthorized
	case apperrors.KindPermission:
		return http.StatusForbidden
	case apperrors.KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
