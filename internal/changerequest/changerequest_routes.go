package changerequest

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
	r.POST("/employees/me/change-requests",
		middleware.AuthMiddleware(tokens, auth.KindEmployee),
		middleware.RateLimitByUser(0.2, 3),
		middleware.RBACAuthorize(rbacService, rbac.ResourceChangeRequest, rbac.ActionCreate),
		middleware.Idempotency(rdb),
		handler.Create,
	)

	admin := r.Group("/admin/change-requests")
	admin.Use(middleware.AuthMiddleware(tokens, auth.KindTenant))
	{
		admin.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceChangeRequest, rbac.ActionRead),
			handler.List,
		)
		admin.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceChangeRequest, rbac.ActionDecide),
			handler.Decide,
		)
	}
}
