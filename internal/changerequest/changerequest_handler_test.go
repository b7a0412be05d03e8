package changerequest_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest"
	changerequesterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest/errors"
	changeMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Decide(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := changeMock.NewMockService(ctrl)
	handler := changerequest.NewHandler(mockService)

	r := gin.New()
	r.PUT("/admin/change-requests/:id", func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("user_id", "c-1")
	}, handler.Decide)

	t.Run("Invalid status value", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/admin/change-requests/cr-1", bytes.NewBufferString(`{"status":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Already decided", func(t *testing.T) {
		mockService.EXPECT().Decide(gomock.Any(), "c-1", "c-1", "cr-1", gomock.Any()).
			Return(changerequest.ChangeRequestResponse{}, changerequesterrors.ErrAlreadyDecided)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/admin/change-requests/cr-1", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("Approved", func(t *testing.T) {
		mockService.EXPECT().Decide(gomock.Any(), "c-1", "c-1", "cr-1", gomock.Any()).
			Return(changerequest.ChangeRequestResponse{ID: "cr-1", Status: "approved"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/admin/change-requests/cr-1",
			bytes.NewBufferString(`{"status":"approved","new_clock_in_time":"2024-01-02T09:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := changeMock.NewMockService(ctrl)
	handler := changerequest.NewHandler(mockService)

	r := gin.New()
	r.POST("/employees/me/change-requests", func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("employee_id", "e-1")
	}, handler.Create)

	t.Run("Note required", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/employees/me/change-requests",
			bytes.NewBufferString(`{"clock_record_id":"6f1c2f5e-8f0b-4c55-9d1e-1c1f1e0c2a11"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), "c-1", "e-1", gomock.Any()).
			Return(changerequest.ChangeRequestResponse{}, changerequesterrors.ErrPendingRequestExists)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/employees/me/change-requests",
			bytes.NewBufferString(`{"clock_record_id":"6f1c2f5e-8f0b-4c55-9d1e-1c1f1e0c2a11","note":"late"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
