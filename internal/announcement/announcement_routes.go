package announcement

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
	r.POST("/admin/announcements",
		middleware.AuthMiddleware(tokens, auth.KindTenant),
		middleware.RateLimitByUser(0.5, 3),
		middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionCreate),
		middleware.Idempotency(rdb),
		handler.Create,
	)
	r.GET("/announcements",
		middleware.AuthMiddleware(tokens, auth.KindTenant, auth.KindEmployee),
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, rbac.ResourceAnnouncement, rbac.ActionRead),
		handler.List,
	)
}
