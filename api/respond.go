package api

import (
	"errors"
	"log"
	"net/http"

	"tripbooking/internal/resource"
	"tripbooking/internal/upload"

	"github.com/gin-gonic/gin"
)

// respondError is the single translation point from the service error
// taxonomy to HTTP. Absence is reported only through ErrNotFound; empty
// collections are valid data and never reach this path.
func respondError(c *gin.Context, err error) {
	switch {
	case resource.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, resource.ErrNotFound), errors.Is(err, upload.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, resource.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid phone or password"})
	case errors.Is(err, upload.ErrTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		// Storage failures stay generic on the wire; the detail goes to
		// the server log only.
		log.Printf("storage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal storage error"})
	}
}
