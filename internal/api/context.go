package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthyrecipehub/backend/internal/apperr"
)

// currentUserID extracts the authenticated user's ID from the gin context.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperr.New(apperr.Unauthenticated, "user not authenticated")
	}
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperr.New(apperr.Unauthenticated, "user not authenticated")
	}
	return id, nil
}
