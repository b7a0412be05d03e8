package middleware

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newPunchRouter stands in for AuthMiddleware with the kiosk's company
// taken from a header.
func newPunchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/clock/in",
		func(c *gin.Context) {
			companyID := c.GetHeader("X-Company")
			c.Set(ContextUserID, companyID)
			c.Set(ContextCompanyID, companyID)
			c.Next()
		},
		RateLimitByUser(50, 100),
		RateLimitPunches(0.01, 2),
		func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
		},
	)
	return r
}

func punch(r *gin.Engine, companyID, employeeID string) *httptest.ResponseRecorder {
	body := `{"employee_id":"` + employeeID + `","pin":"1234"}`
	req := httptest.NewRequest(http.MethodPost, "/clock/in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Company", companyID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitPunches_ShiftChangeSharesOneKiosk(t *testing.T) {
	r := newPunchRouter()

	for i := 0; i < 30; i++ {
		employeeID := fmt.Sprintf("emp-%d", i)
		w := punch(r, "company-1", employeeID)
		assert.Equal(t, http.StatusCreated, w.Code, employeeID)
	}
}

func TestRateLimitPunches_LimitsRepeatedPunchesOfOneEmployee(t *testing.T) {
	r := newPunchRouter()

	assert.Equal(t, http.StatusCreated, punch(r, "company-1", "emp-1").Code)
	assert.Equal(t, http.StatusCreated, punch(r, "company-1", "emp-1").Code)
	assert.Equal(t, http.StatusTooManyRequests, punch(r, "company-1", "emp-1").Code)
	assert.Equal(t, http.StatusCreated, punch(r, "company-1", "emp-2").Code)
}

func TestRateLimitPunches_KeepsBodyForHandler(t *testing.T) {
	r := newPunchRouter()

	w := punch(r, "company-1", "emp-9")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"employee_id":"emp-9","pin":"1234"}`, w.Body.String())
}

func TestRateLimitPunches_SeparatesCompanies(t *testing.T) {
	r := newPunchRouter()

	assert.Equal(t, http.StatusCreated, punch(r, "company-1", "emp-1").Code)
	assert.Equal(t, http.StatusCreated, punch(r, "company-1", "emp-1").Code)
	assert.Equal(t, http.StatusTooManyRequests, punch(r, "company-1", "emp-1").Code)
	assert.Equal(t, http.StatusCreated, punch(r, "company-2", "emp-1").Code)
}
