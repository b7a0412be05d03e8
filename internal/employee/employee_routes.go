package employee

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
	tenantAuth := middleware.AuthMiddleware(tokens, auth.KindTenant)
	employeeAuth := middleware.AuthMiddleware(tokens, auth.KindEmployee)

	employees := r.Group("/employees")
	{
		employees.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)

		employees.POST("",
			tenantAuth,
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionCreate),
			handler.Create,
		)
		employees.GET("",
			tenantAuth,
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetAll,
		)
		employees.GET("/:id/documents/:kind",
			tenantAuth,
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetDocument,
		)

		employees.GET("/me",
			employeeAuth,
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionRead),
			handler.GetMe,
		)
		employees.PUT("/me",
			employeeAuth,
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionUpdate),
			handler.UpdateMe,
		)
		employees.GET("/directory",
			employeeAuth,
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDirectory, rbac.ActionRead),
			handler.GetDirectory,
		)
	}
}
