package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/store"
	"github.com/healthyrecipehub/backend/internal/testhelpers"
	"github.com/healthyrecipehub/backend/internal/types"
)

func newRecipeService(t *testing.T) (*RecipeService, *models.User) {
	t.Helper()
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewRecipeService(db, store.New(db))
	author := testhelpers.CreateTestUser(t, db, models.RoleUser)
	return svc, author
}

func TestRecipeService_ProcessRecipe(t *testing.T) {
	svc, author := newRecipeService(t)

	recipe, err := svc.ProcessRecipe(context.Background(), author.ID, &types.ProcessRecipeRequest{
		Name:         "Quick Grilled Chicken Salad",
		Description:  "A quick salad",
		Category:     "Lunch",
		Ingredients:  []string{"grilled chicken", "  ", "organic greens", ""},
		Instructions: []string{"grill", "", "toss"},
		PrepTime:     10,
		Calories:     380,
		Protein:      32,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPublished, recipe.Status)
	assert.Equal(t, []string{"grilled chicken", "organic greens"}, []string(recipe.Ingredients))
	assert.Equal(t, []string{"grill", "toss"}, []string(recipe.Instructions))
	// organic +5 on the base of 50
	assert.Equal(t, 55, recipe.NutritionScore)
	assert.Contains(t, []string(recipe.Tags), "quick")
	assert.Contains(t, []string(recipe.Tags), "lunch")
	assert.Equal(t, int64(0), recipe.Views)
	assert.Equal(t, int64(0), recipe.Likes)
	require.NotNil(t, recipe.Embedding)

	fetched, err := svc.GetRecipe(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.Name, fetched.Name)
}

func TestRecipeService_ProcessRecipeRejectsInvalid(t *testing.T) {
	svc, author := newRecipeService(t)

	cases := []struct {
		name string
		req  *types.ProcessRecipeRequest
	}{
		{"nil request", nil},
		{"missing name", &types.ProcessRecipeRequest{Ingredients: []string{"rice"}}},
		{"missing ingredients", &types.ProcessRecipeRequest{Name: "Rice"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ProcessRecipe(context.Background(), author.ID, tc.req)
			require.Error(t, err)
			assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
		})
	}

	_, err := svc.ProcessRecipe(context.Background(), uuid.Nil, &types.ProcessRecipeRequest{
		Name: "Rice", Ingredients: []string{"rice"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestRecipeService_ListRecipesFilters(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewRecipeService(db, store.New(db))
	author := testhelpers.CreateTestUser(t, db, models.RoleUser)

	pasta := testhelpers.CreateTestRecipe(t, db, author.ID, "Pesto Pasta")
	require.NoError(t, db.Model(pasta).UpdateColumn("category", "dinner").Error)
	soup := testhelpers.CreateTestRecipe(t, db, author.ID, "Lentil Soup")
	require.NoError(t, db.Model(soup).UpdateColumn("category", "lunch").Error)

	byCategory, err := svc.ListRecipes(context.Background(), "", "lunch")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Lentil Soup", byCategory[0].Name)

	bySearch, err := svc.ListRecipes(context.Background(), "pesto", "")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Pesto Pasta", bySearch[0].Name)

	all, err := svc.ListRecipes(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRecipeService_Analytics(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewRecipeService(db, store.New(db))
	author := testhelpers.CreateTestUser(t, db, models.RoleUser)

	recipe := testhelpers.CreateTestRecipe(t, db, author.ID, "Metrics Bowl")
	require.NoError(t, db.Model(recipe).Updates(map[string]interface{}{
		"views":  200,
		"likes":  45,
		"rating": 4.5,
	}).Error)

	now := recipe.CreatedAt.Add(30 * 24 * time.Hour)
	analytics, err := svc.Analytics(context.Background(), recipe.ID, now)
	require.NoError(t, err)

	assert.Equal(t, recipe.ID.String(), analytics.RecipeID)
	assert.Equal(t, int64(200), analytics.Views)
	assert.Equal(t, int64(45), analytics.Likes)
	// views capped at 100: 30 + 18 + 27, no recency bonus
	assert.InDelta(t, 75.0, analytics.PopularityScore, 0.001)
}

func TestRecipeService_AnalyticsUnknownRecipe(t *testing.T) {
	svc, _ := newRecipeService(t)

	_, err := svc.Analytics(context.Background(), uuid.New(), time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestRecipeService_RecordViewAndLike(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewRecipeService(db, store.New(db))
	author := testhelpers.CreateTestUser(t, db, models.RoleUser)
	recipe := testhelpers.CreateTestRecipe(t, db, author.ID, "Counted")

	require.NoError(t, svc.RecordView(context.Background(), recipe.ID))
	require.NoError(t, svc.RecordView(context.Background(), recipe.ID))
	require.NoError(t, svc.RecordLike(context.Background(), recipe.ID))

	var updated models.Recipe
	require.NoError(t, db.First(&updated, "id = ?", recipe.ID).Error)
	assert.Equal(t, int64(2), updated.Views)
	assert.Equal(t, int64(1), updated.Likes)
}
