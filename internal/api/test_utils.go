package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/middleware"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/service"
	"github.com/healthyrecipehub/backend/internal/store"
	"github.com/healthyrecipehub/backend/internal/testhelpers"
)

// stubEmailService records sends without doing anything.
type stubEmailService struct {
	welcomed []string
}

func (s *stubEmailService) SendEmail(to, subject, body string) error { return nil }

func (s *stubEmailService) SendWelcomeEmail(email, displayName string) error {
	s.welcomed = append(s.welcomed, email)
	return nil
}

func (s *stubEmailService) SendRecommendationNotification(email, displayName string, recipeNames []string) error {
	return nil
}

type testEnv struct {
	DB          *gorm.DB
	Router      *gin.Engine
	AuthService *service.AuthService
	Email       *stubEmailService
}

// setupTestEnv wires the full route table against an in-memory database,
// without Redis or S3.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	email := &stubEmailService{}
	authService := service.NewAuthService(db, "test-secret", email)
	recordStore := store.New(db)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(
		service.NewRecipeService(db, recordStore),
		service.NewRecommendationService(db, recordStore, email),
		authService,
		nil,
	).RegisterRoutes(v1)
	NewUserHandler(service.NewUserService(db, recordStore), email, authService).RegisterRoutes(v1)
	NewAdminHandler(
		service.NewBulkService(recordStore),
		service.NewUserService(db, recordStore),
		service.NewReportService(db),
		nil,
		authService,
		nil,
	).RegisterRoutes(v1)

	return &testEnv{DB: db, Router: router, AuthService: authService, Email: email}
}

// tokenFor creates a user with the given role and returns it with a valid token.
func (e *testEnv) tokenFor(t *testing.T, role models.Role) (*models.User, string) {
	t.Helper()
	user := testhelpers.CreateTestUser(t, e.DB, role)
	token, err := e.AuthService.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

// doJSON performs a request with an optional JSON body and bearer token.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.Router.ServeHTTP(rr, req)
	return rr
}
