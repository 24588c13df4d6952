package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/store"
	"github.com/healthyrecipehub/backend/internal/testhelpers"
)

func TestBulkService_ProcessRecalculatesNutrition(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	recipe := testhelpers.CreateTestRecipe(t, db, admin.ID, "Organic Bowl")
	require.NoError(t, db.Model(recipe).Updates(map[string]interface{}{
		"ingredients":     models.JSONBStringArray{"organic kale", "lean chicken"},
		"nutrition_score": 0,
	}).Error)

	results, processed, err := svc.Process(context.Background(), admin.ID, OpRecalculateNutrition, []string{recipe.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	require.NotNil(t, results[0].NutritionScore)
	assert.Equal(t, 60, *results[0].NutritionScore)

	var updated models.Recipe
	require.NoError(t, db.First(&updated, "id = ?", recipe.ID).Error)
	// organic and lean are each worth +5 on the base of 50
	assert.Equal(t, 60, updated.NutritionScore)
}

func TestBulkService_MissingRecipeIsIsolated(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	first := testhelpers.CreateTestRecipe(t, db, admin.ID, "First")
	second := testhelpers.CreateTestRecipe(t, db, admin.ID, "Second")
	missing := uuid.New().String()

	ids := []string{first.ID.String(), missing, second.ID.String()}
	results, processed, err := svc.Process(context.Background(), admin.ID, OpRegenerateTags, ids)
	require.NoError(t, err)

	// processed counts every submitted item, failures included
	assert.Equal(t, 3, processed)
	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.Contains(t, results[0].Tags, "dinner")
	assert.False(t, results[1].Success)
	assert.Equal(t, "recipe not found", results[1].Error)
	assert.True(t, results[2].Success)

	var updated models.Recipe
	require.NoError(t, db.First(&updated, "id = ?", first.ID).Error)
	assert.Contains(t, []string(updated.Tags), "dinner")
}

func TestBulkService_StoreFailureKeepsItsMessage(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	require.NoError(t, db.Migrator().DropTable(&models.Recipe{}))

	results, processed, err := svc.Process(context.Background(), admin.ID, OpUpdateStatus, []string{uuid.New().String()})
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEqual(t, "recipe not found", results[0].Error)
	assert.NotEmpty(t, results[0].Error)
}

func TestBulkService_MalformedIDIsIsolated(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	results, processed, err := svc.Process(context.Background(), admin.ID, OpUpdateStatus, []string{"not-a-uuid"})
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, "invalid recipe id", results[0].Error)
}

func TestBulkService_NonAdminRejectedBeforeWrites(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	user := testhelpers.CreateTestUser(t, db, models.RoleUser)
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	recipe := testhelpers.CreateTestRecipe(t, db, admin.ID, "Untouched")
	require.NoError(t, db.Model(recipe).UpdateColumn("status", models.StatusDraft).Error)

	_, _, err := svc.Process(context.Background(), user.ID, OpUpdateStatus, []string{recipe.ID.String()})
	require.Error(t, err)
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))

	var untouched models.Recipe
	require.NoError(t, db.First(&untouched, "id = ?", recipe.ID).Error)
	assert.Equal(t, models.StatusDraft, untouched.Status)
}

func TestBulkService_UnknownActorRejected(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))

	_, _, err := svc.Process(context.Background(), uuid.New(), OpUpdateStatus, []string{uuid.New().String()})
	require.Error(t, err)
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))
}

func TestBulkService_InvalidOperation(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	_, _, err := svc.Process(context.Background(), admin.ID, "dropTables", []string{uuid.New().String()})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestBulkService_EmptyIDList(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	_, _, err := svc.Process(context.Background(), admin.ID, OpUpdateStatus, nil)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestBulkService_UpdateStatusPublishes(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBulkService(store.New(db))
	admin := testhelpers.CreateTestUser(t, db, models.RoleAdmin)

	draft := testhelpers.CreateTestRecipe(t, db, admin.ID, "Draft Soup")
	require.NoError(t, db.Model(draft).UpdateColumn("status", models.StatusDraft).Error)

	results, processed, err := svc.Process(context.Background(), admin.ID, OpUpdateStatus, []string{draft.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, models.StatusPublished, results[0].Status)

	var published models.Recipe
	require.NoError(t, db.First(&published, "id = ?", draft.ID).Error)
	assert.Equal(t, models.StatusPublished, published.Status)
}
