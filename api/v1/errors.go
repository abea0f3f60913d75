package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/appcanvas-backend/models"
	"github.com/gin-gonic/gin"
)

// respondError maps a service-level error to its HTTP status and a JSON
// {message} body. Unknown errors are logged and masked as a server error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrDuplicateUsername),
		errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrInvalidToken),
		errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
	}
}
