package entrypoint

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBuild_AuditEnabled(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{Audit: config.Audit{Enabled: true, RetentionDays: 30, CleanupSchedule: config.DefaultAuditCleanupSchedule}}

	router, auditService, cleanup := Build(db, cfg, "test")
	require.NotNil(t, auditService)
	require.NotNil(t, cleanup)

	req := httptest.NewRequest("POST", "/books/", strings.NewReader(`{"title":"Dune","author":"Herbert"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	auditService.Wait()

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/audit", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "book_create")
}

func TestBuild_AuditDisabled(t *testing.T) {
	db := setupTestDB(t)

	router, auditService, cleanup := Build(db, &config.Config{}, "test")
	assert.Nil(t, auditService)
	assert.Nil(t, cleanup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/audit", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
