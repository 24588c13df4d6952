package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyrecipehub/backend/internal/types"
)

func TestRegisterEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	rr := env.doJSON(t, "POST", "/api/v1/auth/register", "", types.RegisterRequest{
		Email:       "cook@example.com",
		Password:    "password123",
		DisplayName: "Cook",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "cook@example.com", resp.User.Email)
	assert.Equal(t, []string{"cook@example.com"}, env.Email.welcomed)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	env := setupTestEnv(t)

	payload := types.RegisterRequest{Email: "cook@example.com", Password: "password123"}
	rr := env.doJSON(t, "POST", "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = env.doJSON(t, "POST", "/api/v1/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	rr := env.doJSON(t, "POST", "/api/v1/auth/register", "", types.RegisterRequest{
		Email:    "cook@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = env.doJSON(t, "POST", "/api/v1/auth/login", "", types.LoginRequest{
		Email:    "cook@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.doJSON(t, "POST", "/api/v1/auth/login", "", types.LoginRequest{
		Email:    "cook@example.com",
		Password: "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
