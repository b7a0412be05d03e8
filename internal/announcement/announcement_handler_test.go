package announcement_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement"
	announcementMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := announcementMock.NewMockService(ctrl)
	handler := announcement.NewHandler(mockService)

	r := gin.New()
	setIdentity := func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("user_id", "c-1")
	}
	r.POST("/admin/announcements", setIdentity, handler.Create)
	r.GET("/announcements", setIdentity, handler.List)

	t.Run("Create requires event date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/admin/announcements",
			bytes.NewBufferString(`{"title":"BBQ","description":"fun"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), "c-1", "c-1", announcement.CreateAnnouncementRequest{
			Title: "BBQ", Description: "fun", EventDate: "2024-05-01",
		}).Return(announcement.AnnouncementResponse{ID: "a-1", EventDate: "2024-05-01"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/admin/announcements",
			bytes.NewBufferString(`{"title":"BBQ","description":"fun","event_date":"2024-05-01"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("List upcoming", func(t *testing.T) {
		mockService.EXPECT().List(gomock.Any(), "c-1", true).
			Return([]announcement.AnnouncementResponse{{ID: "a-1"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/announcements?upcoming=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a-1")
	})
}
