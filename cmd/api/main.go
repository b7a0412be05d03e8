package main

import (
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/app"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/bootstrap"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/config"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(logger),
		cleanup,
	)
	if err != nil {
		logger.Error("http server stopped with error", zap.Error(err))
	}
}
