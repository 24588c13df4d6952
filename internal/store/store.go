// Package store is the persistence boundary for recipe and user records.
// It exposes document-style get/increment operations plus a staged write
// batch that commits in a single transaction.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for query paths that need it directly.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "recipe not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch recipe", err)
	}
	return &recipe, nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch user", err)
	}
	return &user, nil
}

// IncrementRecipeCounter atomically bumps a counter column on a recipe.
func (s *Store) IncrementRecipeCounter(ctx context.Context, id uuid.UUID, column string, delta int64) error {
	if column != "views" && column != "likes" {
		return apperr.Newf(apperr.InvalidArgument, "column %q is not a counter", column)
	}

	result := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return apperr.Wrap(apperr.Internal, "failed to increment counter", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "recipe not found")
	}
	return nil
}
