package app

import (
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/announcement"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/changerequest"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/clockrecord"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/company"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/config"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/connection"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/counter"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/timeoff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&company.Company{},
		&counter.CompanyCounter{},
		&employee.Employee{},
		&clockrecord.ClockRecord{},
		&changerequest.ChangeRequest{},
		&timeoff.TimeOff{},
		&announcement.Announcement{},
		&kafka.OutboxEvent{},
	}
}

func connectDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.DSN(), connectRetries)
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, err
		}
		zap.L().Info("database migrated")
	}
	return db, nil
}

// BuildApp connects infrastructure and registers every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	db, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	if err := registerModules(router, cfg, db, rdb); err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}
