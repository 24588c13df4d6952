package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityReport is a daily roll-up of user logins and recipe creation.
type ActivityReport struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Date        time.Time `gorm:"not null;uniqueIndex" json:"date"`
	ActiveUsers int64     `gorm:"not null" json:"active_users"`
	NewRecipes  int64     `gorm:"not null" json:"new_recipes"`
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`
}
