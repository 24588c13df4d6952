package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	NotificationRecipeRecommendations = "recipe_recommendations"
)

type Notification struct {
	ID        uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UserID    uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Type      string           `gorm:"size:50;not null" json:"type"`
	Title     string           `gorm:"size:255;not null" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	RecipeIDs JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"recipe_ids"`
}
