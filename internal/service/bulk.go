package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/scoring"
	"github.com/healthyrecipehub/backend/internal/store"
)

// Supported bulk operations.
const (
	OpRecalculateNutrition = "recalculateNutrition"
	OpRegenerateTags       = "regenerateTags"
	OpUpdateStatus         = "updateStatus"
)

// BulkItemResult reports the outcome for one recipe in a bulk request,
// in the same order the IDs were submitted. Successful items carry the
// value the operation computed for them.
type BulkItemResult struct {
	RecipeID       string   `json:"recipe_id"`
	Success        bool     `json:"success"`
	Error          string   `json:"error,omitempty"`
	NutritionScore *int     `json:"nutrition_score,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Status         string   `json:"status,omitempty"`
}

// BulkService applies an operation to many recipes in one atomic commit.
// Per-recipe lookup failures are isolated; the staged writes for the
// remaining recipes land together or not at all.
type BulkService struct {
	store *store.Store
}

func NewBulkService(recordStore *store.Store) *BulkService {
	return &BulkService{store: recordStore}
}

func validOperation(op string) bool {
	switch op {
	case OpRecalculateNutrition, OpRegenerateTags, OpUpdateStatus:
		return true
	}
	return false
}

// Process runs the named operation over the given recipe IDs on behalf of
// the acting user. It returns one result per submitted ID plus the total
// number of items processed, failures included.
func (s *BulkService) Process(ctx context.Context, actorID uuid.UUID, operation string, recipeIDs []string) ([]BulkItemResult, int, error) {
	if actorID == uuid.Nil {
		return nil, 0, apperr.New(apperr.Unauthenticated, "user must be authenticated")
	}

	actor, err := s.store.GetUser(ctx, actorID)
	if err != nil || actor.Role != models.RoleAdmin {
		return nil, 0, apperr.New(apperr.PermissionDenied, "only admins can bulk process recipes")
	}

	if !validOperation(operation) {
		return nil, 0, apperr.Newf(apperr.InvalidArgument, "unknown operation: %s", operation)
	}
	if len(recipeIDs) == 0 {
		return nil, 0, apperr.New(apperr.InvalidArgument, "no recipe ids provided")
	}

	batch := s.store.NewBatch()
	results := make([]BulkItemResult, 0, len(recipeIDs))

	for _, rawID := range recipeIDs {
		id, err := uuid.Parse(rawID)
		if err != nil {
			results = append(results, BulkItemResult{RecipeID: rawID, Error: "invalid recipe id"})
			continue
		}

		recipe, err := s.store.GetRecipe(ctx, id)
		if err != nil {
			if apperr.Is(err, apperr.NotFound) {
				results = append(results, BulkItemResult{RecipeID: rawID, Error: "recipe not found"})
			} else {
				results = append(results, BulkItemResult{RecipeID: rawID, Error: err.Error()})
			}
			continue
		}

		result := BulkItemResult{RecipeID: rawID, Success: true}
		fields, err := s.stageFields(operation, recipe, &result)
		if err != nil {
			results = append(results, BulkItemResult{RecipeID: rawID, Error: err.Error()})
			continue
		}
		fields["updated_at"] = time.Now().UTC()

		batch.Update(&models.Recipe{}, id, fields)
		results = append(results, result)
	}

	if err := batch.Commit(ctx); err != nil {
		return nil, 0, err
	}
	return results, len(results), nil
}

func (s *BulkService) stageFields(operation string, recipe *models.Recipe, result *BulkItemResult) (map[string]interface{}, error) {
	switch operation {
	case OpRecalculateNutrition:
		score, err := scoring.NutritionScore(recipe.Ingredients)
		if err != nil {
			return nil, err
		}
		result.NutritionScore = &score
		return map[string]interface{}{"nutrition_score": score}, nil
	case OpRegenerateTags:
		tags := scoring.GenerateTags(recipe)
		result.Tags = tags
		return map[string]interface{}{"tags": models.JSONBStringArray(tags)}, nil
	case OpUpdateStatus:
		result.Status = models.StatusPublished
		return map[string]interface{}{"status": models.StatusPublished}, nil
	}
	return nil, apperr.Newf(apperr.InvalidArgument, "unknown operation: %s", operation)
}
