package clockrecord

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("clockrecord.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clockrecord.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("clock record request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, apperror.CodeValidationError, httpErr.Message, nil)
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	res, err := h.service.ClockIn(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	res, err := h.service.ClockOut(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListActive(c *gin.Context) {
	res, err := h.service.ListActive(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CurrentWeekSummary(c *gin.Context) {
	res, err := h.service.CurrentWeekSummary(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) MyPayRecords(c *gin.Context) {
	h.payRecords(c, c.GetString("employee_id"))
}

func (h *Handler) EmployeePayRecords(c *gin.Context) {
	h.payRecords(c, c.Param("id"))
}

func (h *Handler) payRecords(c *gin.Context, employeeID string) {
	res, err := h.service.PayRecords(c.Request.Context(), c.GetString("company_id"), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Payslip(c *gin.Context) {
	pdf, filename, err := h.service.Payslip(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), c.Param("week"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
