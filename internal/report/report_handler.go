package report

import (
	"fmt"
	"net/http"
	"time"

	reporterrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/report/errors"
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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("report failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindQuery(c *gin.Context) (Query, bool) {
	var q Query
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return Query{}, false
	}
	if q.Format != "" && q.Format != "json" && q.Format != "xlsx" {
		h.writeServiceError(c, reporterrors.ErrUnsupportedFormat)
		return Query{}, false
	}
	return q, true
}

func (h *Handler) writeWorkbook(c *gin.Context, name string, sheet Sheet) {
	data, err := BuildWorkbook(sheet)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, XLSXContentType, data)
}

func (h *Handler) ChangeRequests(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	rows, err := h.service.ChangeRequests(c.Request.Context(), c.GetString("company_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if q.Format == "xlsx" {
		h.writeWorkbook(c, "change-requests", changeRequestSheet(rows))
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) Attendance(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	rows, err := h.service.Attendance(c.Request.Context(), c.GetString("company_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if q.Format == "xlsx" {
		h.writeWorkbook(c, "attendance", attendanceSheet(rows))
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) TimeOff(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	rows, err := h.service.TimeOff(c.Request.Context(), c.GetString("company_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if q.Format == "xlsx" {
		h.writeWorkbook(c, "time-off", timeOffSheet(rows))
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}
