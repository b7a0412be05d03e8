package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	companyerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company/errors"
	companyMock "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(company.CompanyResponse{ID: "c-1", Username: "maple"}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/auth/register", handler.Register)

		body, _ := json.Marshal(validRegisterRequest())
		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
	})

	t.Run("Missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/auth/register", handler.Register)

		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"username":"maple"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Username taken", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(company.CompanyResponse{}, companyerrors.ErrUsernameTaken)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/auth/register", handler.Register)

		body, _ := json.Marshal(validRegisterRequest())
		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	compID := "6f1c2f5e-8f0b-4c55-9d1e-1c1f1e0c2a11"
	mockService.EXPECT().GetByID(gomock.Any(), compID).Return(company.CompanyResponse{ID: compID, CompanyName: "Maple Bakery"}, nil)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(func(c *gin.Context) {
		c.Set("company_id", compID)
		c.Next()
	})
	r.GET("/auth/profile", handler.GetMe)

	req, _ := http.NewRequest(http.MethodGet, "/auth/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Ok   bool                    `json:"ok"`
		Data company.CompanyResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Maple Bakery", res.Data.CompanyName)
}
