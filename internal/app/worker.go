package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/config"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka/producer"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/connection"

	"go.uber.org/zap"
)

var ErrMissingKafkaBroker = errors.New("KAFKA_BROKER is required")

// RunWorker relays outbox rows to Kafka until a shutdown signal arrives.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return ErrMissingKafkaBroker
	}

	db, err := connectDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(db)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)

	logger.Info("worker shutting down")
	return nil
}
