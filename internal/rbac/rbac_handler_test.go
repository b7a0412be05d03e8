package rbac_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := rbac.NewHandler(newService(t))

	r := gin.New()
	r.POST("/rbac/enforce", handler.Enforce)
	r.GET("/rbac/permissions", func(c *gin.Context) { c.Set("role", "admin") }, handler.MyPermissions)

	t.Run("Enforce allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce",
			bytes.NewBufferString(`{"role":"admin","resource":"report","action":"read"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("Enforce missing action", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce",
			bytes.NewBufferString(`{"role":"admin","resource":"report"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("My permissions", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/rbac/permissions", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"resource":"notification"`)
	})
}
