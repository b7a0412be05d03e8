package main

import (
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/app"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/config"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/logging"

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

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
