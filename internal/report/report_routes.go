package report

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
	reports := r.Group("/admin/reports")
	reports.Use(
		middleware.AuthMiddleware(tokens, auth.KindTenant),
		middleware.RateLimitByUser(1, 3),
		middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead),
	)
	{
		reports.GET("/change-requests", handler.ChangeRequests)
		reports.GET("/attendance", handler.Attendance)
		reports.GET("/time-off", handler.TimeOff)
	}
}
