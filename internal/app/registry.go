package app

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/config"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/filestore"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/middleware"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/notification"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/rbac"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/rbac/infra"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/report"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/counter"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/response"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/timeoff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Infrastructure ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TenantTokenTTL, cfg.EmployeeTokenTTL)
	files, err := filestore.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return err
	}
	pushSender := notification.NewOneSignalClient(cfg.OneSignalAppID, cfg.OneSignalAPIKey, cfg.OneSignalURL, logger)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.DefaultPolicies())
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	clockRepo := clockrecord.NewRepository(db)
	changeRequestRepo := changerequest.NewRepository(db)
	timeOffRepo := timeoff.NewRepository(db)
	announcementRepo := announcement.NewRepository(db)
	reportRepo := report.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	companyService := company.NewService(companyRepo, tokens, logger)
	employeeService := employee.NewService(db, employeeRepo, companyRepo, counterRepo, outboxRepo, files, rdb, tokens, logger)
	clockService := clockrecord.NewService(db, clockRepo, employeeRepo, companyRepo, logger)
	changeRequestService := changerequest.NewService(db, changeRequestRepo, clockRepo, outboxRepo, logger)
	timeOffService := timeoff.NewService(db, timeOffRepo, outboxRepo, logger)
	announcementService := announcement.NewService(announcementRepo, logger)
	reportService := report.NewService(reportRepo, logger)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	clockHandler := clockrecord.NewHandler(clockService, logger)
	changeRequestHandler := changerequest.NewHandler(changeRequestService, logger)
	timeOffHandler := timeoff.NewHandler(timeOffService, logger)
	announcementHandler := announcement.NewHandler(announcementService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	notificationHandler := notification.NewHandler(pushSender, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
	)
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, tokens, rbacService, cfg.OperatorKey)
		employee.RegisterRoutes(api, employeeHandler, tokens, rbacService)
		clockrecord.RegisterRoutes(api, clockHandler, tokens, rbacService, rdb)
		changerequest.RegisterRoutes(api, changeRequestHandler, tokens, rbacService, rdb)
		timeoff.RegisterRoutes(api, timeOffHandler, tokens, rbacService, rdb)
		announcement.RegisterRoutes(api, announcementHandler, tokens, rbacService, rdb)
		report.RegisterRoutes(api, reportHandler, tokens, rbacService)
		notification.RegisterRoutes(api, notificationHandler, tokens, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, tokens)
	}

	return nil
}
