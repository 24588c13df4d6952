package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/healthyrecipehub/backend/internal/models"
)

// TokenClaims represents the claims in a JWT token. The role claim is what
// authorization middleware compares against, so it always reflects the role
// at token issue time.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID   `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}
