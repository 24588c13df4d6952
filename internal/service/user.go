package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/store"
	"github.com/healthyrecipehub/backend/internal/types"
)

// UserService handles user statistics and administrative account changes.
type UserService struct {
	db    *gorm.DB
	store *store.Store
}

func NewUserService(db *gorm.DB, recordStore *store.Store) *UserService {
	return &UserService{db: db, store: recordStore}
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// Stats summarizes account activity for a user.
func (s *UserService) Stats(ctx context.Context, userID uuid.UUID) (*types.UserStats, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var recipeCount int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("author_id = ?", userID).Count(&recipeCount).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to count recipes", err)
	}

	stats := &types.UserStats{
		RecipesCreated: recipeCount,
		MemberSince:    user.CreatedAt.UTC().Format(time.RFC3339),
		IsActive:       user.IsActive,
		Role:           string(user.Role),
	}
	if user.LastLogin != nil {
		last := user.LastLogin.UTC().Format(time.RFC3339)
		stats.LastLogin = &last
	}
	return stats, nil
}

// UpdateRole assigns a new role to a user. Only admins may change roles,
// and only to an assignable role.
func (s *UserService) UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, role models.Role) (*models.User, error) {
	actor, err := s.store.GetUser(ctx, actorID)
	if err != nil || actor.Role != models.RoleAdmin {
		return nil, apperr.New(apperr.PermissionDenied, "only admins can change roles")
	}
	if !role.Assignable() {
		return nil, apperr.Newf(apperr.InvalidArgument, "role %q cannot be assigned", role)
	}

	target, err := s.store.GetUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"role":       role,
		"updated_by": actorID,
		"updated_at": now,
	}
	if err := s.db.WithContext(ctx).Model(target).Updates(updates).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update role", err)
	}
	target.Role = role
	target.UpdatedBy = &actorID
	target.UpdatedAt = now
	return target, nil
}

// DeleteUser removes a user account along with their recipes and
// notifications in one transaction.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	actor, err := s.store.GetUser(ctx, actorID)
	if err != nil || actor.Role != models.RoleAdmin {
		return apperr.New(apperr.PermissionDenied, "only admins can delete users")
	}

	if _, err := s.store.GetUser(ctx, targetID); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", targetID).Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", targetID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", targetID).Error
	})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete user", err)
	}
	return nil
}
