package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/testhelpers"
)

type fakeEmailService struct {
	sent        []string
	welcomed    []string
	recommended []string
}

func (f *fakeEmailService) SendEmail(to, subject, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(email, displayName string) error {
	f.welcomed = append(f.welcomed, email)
	return nil
}

func (f *fakeEmailService) SendRecommendationNotification(email, displayName string, recipeNames []string) error {
	f.recommended = append(f.recommended, email)
	return nil
}

func TestAuthService_Register(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	email := &fakeEmailService{}
	svc := NewAuthService(db, "test-secret", email)

	user, token, err := svc.Register(context.Background(), "cook@example.com", "password123", "Cook")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.Equal(t, []string{"cook@example.com"}, email.welcomed)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret", &fakeEmailService{})

	_, _, err := svc.Register(context.Background(), "cook@example.com", "password123", "Cook")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "cook@example.com", "otherpassword", "Other")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestAuthService_Login(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret", &fakeEmailService{})

	_, _, err := svc.Register(context.Background(), "cook@example.com", "password123", "Cook")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "cook@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.LastLogin)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret", &fakeEmailService{})

	_, _, err := svc.Register(context.Background(), "cook@example.com", "password123", "Cook")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "cook@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestAuthService_ValidateTokenRejectsTampered(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewAuthService(db, "test-secret", &fakeEmailService{})
	other := NewAuthService(db, "other-secret", &fakeEmailService{})

	_, token, err := svc.Register(context.Background(), "cook@example.com", "password123", "Cook")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
