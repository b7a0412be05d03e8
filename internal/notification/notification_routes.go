package notification

import (
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/middleware"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens middleware.TokenParser,
	rbacService rbac.Service,
) {
	r.POST("/admin/notifications",
		middleware.AuthMiddleware(tokens, auth.KindTenant),
		middleware.RateLimitByUser(0.5, 5),
		middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionSend),
		handler.Send,
	)
}
