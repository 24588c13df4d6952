package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/recommend"
	"github.com/healthyrecipehub/backend/internal/store"
)

// authoredSampleSize caps how many of the user's own recipes seed the
// preference profile.
const authoredSampleSize = 10

// notificationTopN caps how many recipe IDs a recommendation notification
// carries.
const notificationTopN = 5

// RecommendationService derives a user's taste profile from their own
// recipes and ranks published candidates against it.
type RecommendationService struct {
	db    *gorm.DB
	store *store.Store
	email IEmailService
}

func NewRecommendationService(db *gorm.DB, recordStore *store.Store, email IEmailService) *RecommendationService {
	return &RecommendationService{db: db, store: recordStore, email: email}
}

// Recommend returns ranked recipe recommendations for the user and records
// a notification carrying the top picks. maxCalories of zero means no
// calorie filter.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, maxCalories float64) ([]recommend.Scored, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var authored []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("author_id = ?", userID).
		Limit(authoredSampleSize).
		Find(&authored).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch user recipes", err)
	}

	categories := make([]string, 0, len(authored))
	tags := make([]string, 0)
	seenCategory := make(map[string]bool)
	seenTag := make(map[string]bool)
	for _, recipe := range authored {
		if recipe.Category != "" && !seenCategory[recipe.Category] {
			seenCategory[recipe.Category] = true
			categories = append(categories, recipe.Category)
		}
		for _, tag := range recipe.Tags {
			if !seenTag[tag] {
				seenTag[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	query := s.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Where("author_id <> ?", userID)
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	if maxCalories > 0 {
		query = query.Where("calories <= ?", maxCalories)
	}

	var candidates []models.Recipe
	if err := query.Find(&candidates).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch candidates", err)
	}

	pointers := make([]*models.Recipe, len(candidates))
	for i := range candidates {
		pointers[i] = &candidates[i]
	}
	ranked := recommend.Rank(pointers, categories, tags)

	if len(ranked) > 0 {
		if err := s.recordNotification(ctx, user, ranked); err != nil {
			log.Printf("Failed to record recommendation notification for %s: %v", userID, err)
		}
	}
	return ranked, nil
}

func (s *RecommendationService) recordNotification(ctx context.Context, user *models.User, ranked []recommend.Scored) error {
	top := ranked
	if len(top) > notificationTopN {
		top = top[:notificationTopN]
	}
	ids := make(models.JSONBStringArray, len(top))
	names := make([]string, len(top))
	for i, item := range top {
		ids[i] = item.Recipe.ID.String()
		names[i] = item.Recipe.Name
	}

	notification := &models.Notification{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		UserID:    user.ID,
		Type:      models.NotificationRecipeRecommendations,
		Title:     "New recipes picked for you",
		Message:   "We found recipes matching your cooking style.",
		RecipeIDs: ids,
	}
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return err
	}

	if user.EmailNotifications && s.email != nil {
		if err := s.email.SendRecommendationNotification(user.Email, user.DisplayName, names); err != nil {
			log.Printf("Failed to send recommendation email to %s: %v", user.Email, err)
		}
	}
	return nil
}
