package handlers

import (
	"errors"
	"net/http"

	apperrors "saas-dashboard-backend/internal/errors"
	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeError maps domain errors to HTTP status codes. Unrecognized errors
// become 500 without leaking internals to the client.
func writeError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsExpired(err):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err) || apperrors.IsInvalidState(err) || err == apperrors.ErrSoleOwner:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err) || errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requestMeta extracts client metadata recorded alongside audit events
func requestMeta(c *gin.Context) service.RequestMeta {
	return service.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
