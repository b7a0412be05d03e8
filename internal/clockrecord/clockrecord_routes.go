package clockrecord

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
	tenantAuth := middleware.AuthMiddleware(tokens, auth.KindTenant)
	employeeAuth := middleware.AuthMiddleware(tokens, auth.KindEmployee)

	clock := r.Group("/clock")
	clock.Use(tenantAuth)
	{
		clock.POST("/in",
			middleware.RateLimitByUser(50, 100),
			middleware.RateLimitPunches(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClock, rbac.ActionPunch),
			middleware.Idempotency(rdb),
			handler.ClockIn,
		)
		clock.POST("/out",
			middleware.RateLimitByUser(50, 100),
			middleware.RateLimitPunches(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClock, rbac.ActionPunch),
			middleware.Idempotency(rdb),
			handler.ClockOut,
		)
		clock.GET("/active",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceClock, rbac.ActionRead),
			handler.ListActive,
		)
	}

	employees := r.Group("/employees")
	{
		employees.GET("/me/timecards/summary",
			employeeAuth,
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimecard, rbac.ActionRead),
			handler.CurrentWeekSummary,
		)
		employees.GET("/me/pay-records",
			employeeAuth,
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePay, rbac.ActionRead),
			handler.MyPayRecords,
		)
		employees.GET("/me/pay-records/:week/payslip",
			employeeAuth,
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePay, rbac.ActionRead),
			handler.Payslip,
		)
		employees.GET("/:id/pay-records",
			tenantAuth,
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePay, rbac.ActionRead),
			handler.EmployeePayRecords,
		)
	}
}
