package notification

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/contextutil"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	sender Sender
	logger *zap.Logger
}

func NewHandler(sender Sender, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.handler")
	}
	return &Handler{sender: sender, logger: l}
}

func (h *Handler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, apperror.CodeValidationError, httpErr.Message, nil)
		return
	}

	ctx := c.Request.Context()
	res, err := h.sender.Send(ctx, Message{
		PlayerIDs: []string{req.PlayerID},
		Title:     req.Title,
		Body:      req.Message,
	})
	if err != nil {
		contextutil.GetLogger(ctx, h.logger).Warn("send notification failed",
			zap.String("company_id", c.GetString("company_id")),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, SendNotificationResponse{ID: res.ID, Recipients: res.Recipients}, nil)
}
