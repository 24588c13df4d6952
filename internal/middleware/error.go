package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthyrecipehub/backend/internal/apperr"
)

// ErrorHandler converts errors attached to the gin context into JSON
// responses with the status matching the error kind. Handlers call
// c.Error(err) and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(status, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
