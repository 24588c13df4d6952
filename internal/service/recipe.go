package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/scoring"
	"github.com/healthyrecipehub/backend/internal/store"
	"github.com/healthyrecipehub/backend/internal/types"
)

// RecipeService handles recipe processing, lookup and analytics.
type RecipeService struct {
	db    *gorm.DB
	store *store.Store
}

func NewRecipeService(db *gorm.DB, recordStore *store.Store) *RecipeService {
	return &RecipeService{db: db, store: recordStore}
}

func stripBlank(entries []string) models.JSONBStringArray {
	cleaned := make(models.JSONBStringArray, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			cleaned = append(cleaned, entry)
		}
	}
	return cleaned
}

// ProcessRecipe validates and enriches a submitted recipe, then persists it
// as published under the acting author.
func (s *RecipeService) ProcessRecipe(ctx context.Context, authorID uuid.UUID, req *types.ProcessRecipeRequest) (*models.Recipe, error) {
	if authorID == uuid.Nil {
		return nil, apperr.New(apperr.Unauthenticated, "user must be authenticated")
	}
	if req == nil || req.Name == "" || req.Ingredients == nil {
		return nil, apperr.New(apperr.InvalidArgument, "invalid recipe data")
	}

	recipe := &models.Recipe{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Ingredients:  stripBlank(req.Ingredients),
		Instructions: stripBlank(req.Instructions),
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Status:       models.StatusPublished,
		Views:        0,
		Likes:        0,
		AuthorID:     authorID,
	}

	score, err := scoring.NutritionScore(recipe.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe.NutritionScore = score
	recipe.Tags = scoring.GenerateTags(recipe)
	embedding := GenerateEmbedding(recipe.Name + " " + recipe.Description)
	recipe.Embedding = &embedding

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create recipe", err)
	}
	return recipe, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	return s.store.GetRecipe(ctx, id)
}

// ListRecipes returns recipes filtered by search text and category. On
// Postgres the search is ordered by embedding distance; elsewhere it falls
// back to keyword matching.
func (s *RecipeService) ListRecipes(ctx context.Context, search, category string) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx)

	if search != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(search)
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
	}

	if category != "" {
		query = query.Where("category = ?", category)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch recipes", err)
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// Analytics aggregates stored counters with derived scores for one recipe.
func (s *RecipeService) Analytics(ctx context.Context, id uuid.UUID, now time.Time) (*types.RecipeAnalytics, error) {
	recipe, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return &types.RecipeAnalytics{
		RecipeID:        recipe.ID.String(),
		Name:            recipe.Name,
		Views:           recipe.Views,
		Likes:           recipe.Likes,
		Rating:          recipe.Rating,
		NutritionScore:  recipe.NutritionScore,
		PopularityScore: scoring.PopularityScore(recipe, now),
		HealthScore:     scoring.HealthScore(recipe),
	}, nil
}

// RecordView bumps the view counter for a recipe.
func (s *RecipeService) RecordView(ctx context.Context, id uuid.UUID) error {
	return s.store.IncrementRecipeCounter(ctx, id, "views", 1)
}

// RecordLike bumps the like counter for a recipe.
func (s *RecipeService) RecordLike(ctx context.Context, id uuid.UUID) error {
	return s.store.IncrementRecipeCounter(ctx, id, "likes", 1)
}
