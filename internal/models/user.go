package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is an ordered enum: each role includes the capabilities of the ones
// below it. Comparison is numeric, never string equality chains.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Level returns the position of the role in the hierarchy. Unknown roles
// rank below guest.
func (r Role) Level() int {
	switch r {
	case RoleGuest:
		return 0
	case RoleUser:
		return 1
	case RoleModerator:
		return 2
	case RoleAdmin:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether the role ranks at or above other.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

// Assignable reports whether the role may be stored on a user record.
// Guest is an implicit level for unauthenticated callers, never persisted.
func (r Role) Assignable() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID                 uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	DisplayName        string         `gorm:"size:100" json:"display_name"`
	Role               Role           `gorm:"size:20;not null;default:'user'" json:"role"`
	IsActive           bool           `gorm:"not null;default:true" json:"is_active"`
	LastLogin          *time.Time     `json:"last_login"`
	UpdatedBy          *uuid.UUID     `gorm:"type:varchar(36)" json:"updated_by,omitempty"`
	EmailNotifications bool           `gorm:"not null;default:true" json:"email_notifications"`
	Theme              string         `gorm:"size:20;not null;default:'light'" json:"theme"`
}
