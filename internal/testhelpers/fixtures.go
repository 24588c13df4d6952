package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/models"
)

// CreateTestUser inserts a user with the given role and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: string(hash),
		DisplayName:  "Test User",
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRecipe inserts a published recipe owned by authorID.
func CreateTestRecipe(t *testing.T, db *gorm.DB, authorID uuid.UUID, name string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		ID:           uuid.New(),
		Name:         name,
		Category:     "dinner",
		Ingredients:  models.JSONBStringArray{"ingredient one", "ingredient two"},
		Instructions: models.JSONBStringArray{"step one"},
		Tags:         models.JSONBStringArray{"dinner"},
		Status:       models.StatusPublished,
		AuthorID:     authorID,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
