package company

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
	operatorKey string,
) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)

		// verifikasi akun dilakukan oleh operator platform, bukan tenant
		authGroup.PUT("/verify/:id", middleware.OperatorKey(operatorKey), handler.Verify)
	}

	tenant := r.Group("/auth")
	tenant.Use(middleware.AuthMiddleware(tokens, auth.KindTenant))
	{
		tenant.GET("/profile",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCompany, rbac.ActionRead),
			handler.GetMe,
		)
		tenant.PUT("/profile",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCompany, rbac.ActionUpdate),
			handler.UpdateMe,
		)
		tenant.PUT("/password",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCompany, rbac.ActionUpdate),
			handler.ChangePassword,
		)
	}
}
