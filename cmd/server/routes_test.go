package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"matrix-talent.backend/internal/infrastructure/models"
	"matrix-talent.backend/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(&models.Developer{}), "migrate")

	return setupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// Drives the registration flow the way the landing page and admin
// dashboard use it: register, reject the duplicate, find via search,
// delete, then observe the profile is gone.
func TestProfileLifecycle(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"name":       "Jane Smith",
		"email":      "jane@example.com",
		"role":       "Backend Developer",
		"bio":        "Distributed systems and databases.",
		"skills":     []string{"Go", "PostgreSQL"},
		"experience": "3-5 years",
	}

	// register
	rec := doJSON(t, r, http.MethodPost, "/api/v1/profiles", payload)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Jane Smith", created["name"])
	assert.Nil(t, created["portfolioUrl"])

	// same email again
	rec = doJSON(t, r, http.MethodPost, "/api/v1/profiles", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// search finds exactly the registered profile
	rec = doJSON(t, r, http.MethodGet, "/api/v1/profiles?search=jane", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0]["id"])

	// role filter that matches nothing
	rec = doJSON(t, r, http.MethodGet, "/api/v1/profiles?search=jane&role=DevOps+Engineer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	// stats reflect the single registration
	rec = doJSON(t, r, http.MethodGet, "/api/v1/profiles/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats["total"])
	assert.EqualValues(t, 1, stats["thisWeek"])
	assert.Equal(t, "Backend Developer", stats["topRole"])

	// delete, then the profile is gone
	rec = doJSON(t, r, http.MethodDelete, "/api/v1/profiles/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/profiles/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/v1/profiles/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetupRouterServesPagesAndHealth(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/", "/admin", "/health", "/metrics"} {
		rec := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestSetupRouterValidationError(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/profiles", map[string]interface{}{
		"name": "No Email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ERR_INVALID_INPUT", body["code"])
}
