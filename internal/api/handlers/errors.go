package handlers

import (
	"errors"
	"net/http"

	"hr-recruiting-api/internal/services"
	"hr-recruiting-api/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// handleServiceError translates service and storage errors into HTTP status
// codes and the standard error envelope. Unrecognized errors become opaque
// 500s so internal details never leak to clients.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		respondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, storage.ErrDuplicateEmail):
		respondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, services.ErrConflict), errors.Is(err, storage.ErrConflict):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "Insufficient permissions")
	default:
		log.Errorf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
