package rbac

import (
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens middleware.TokenParser) {
	group := r.Group("/rbac")
	{
		group.GET("/permissions",
			middleware.AuthMiddleware(tokens, auth.KindTenant, auth.KindEmployee),
			middleware.RateLimitByUser(2, 5),
			handler.MyPermissions,
		)
		group.POST("/enforce",
			middleware.AuthMiddleware(tokens, auth.KindTenant),
			middleware.RateLimitByUser(2, 5),
			handler.Enforce,
		)
	}
}
