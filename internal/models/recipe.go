package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Recipe status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID             uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
	Name           string           `gorm:"size:255;not null" json:"name"`
	Description    string           `gorm:"type:text" json:"description"`
	Category       string           `gorm:"size:50" json:"category"`
	Difficulty     string           `gorm:"size:20" json:"difficulty"`
	Ingredients    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Tags           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	PrepTime       int              `json:"prep_time"`
	CookTime       int              `json:"cook_time"`
	Servings       int              `json:"servings"`
	Calories       float64          `gorm:"type:float" json:"calories"`
	Protein        float64          `gorm:"type:float" json:"protein"`
	Rating         float64          `gorm:"type:float" json:"rating"`
	Views          int64            `gorm:"not null;default:0" json:"views"`
	Likes          int64            `gorm:"not null;default:0" json:"likes"`
	NutritionScore int              `gorm:"not null;default:0" json:"nutrition_score"`
	Status         string           `gorm:"size:20;not null;default:'draft'" json:"status"`
	Embedding      *pgvector.Vector `gorm:"type:vector(3)" json:"-"`
	AuthorID       uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"author_id"`
}
