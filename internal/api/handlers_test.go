package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	env := setupTestEnv(t)

	rr := env.doJSON(t, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Status   string            `json:"status"`
		Handlers map[string]string `json:"handlers"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "active", resp.Handlers["processRecipe"])
	assert.Equal(t, "scheduled", resp.Handlers["dailyActivityReport"])
}
