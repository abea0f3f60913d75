package middleware

import (
	"net/http"
	"strings"

	"github.com/appcanvas-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token on protected routes and puts
// the caller's identity into the request context as "userId"/"username".
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
