package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthyrecipehub/backend/internal/models"
)

// RequireRole rejects requests whose token role ranks below min. Must run
// after AuthMiddleware.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		role, ok := value.(models.Role)
		if !ok || !role.AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
