package timeoff

import (
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/middleware"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens middleware.TokenParser,
	rbacService rbac.Service,
	rdb redis.Cmdable,
) {
	mine := r.Group("/employees/me/time-off")
	mine.Use(middleware.AuthMiddleware(tokens, auth.KindEmployee))
	{
		mine.POST("",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimeOff, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		mine.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimeOff, rbac.ActionRead),
			handler.ListMine,
		)
	}

	admin := r.Group("/admin/time-off")
	admin.Use(middleware.AuthMiddleware(tokens, auth.KindTenant))
	{
		admin.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimeOff, rbac.ActionRead),
			handler.ListPending,
		)
		admin.PATCH("/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimeOff, rbac.ActionDecide),
			handler.UpdateStatus,
		)
	}
}
