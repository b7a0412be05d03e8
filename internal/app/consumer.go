package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/config"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/employee"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/messaging/kafka/consumer"
	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const decisionConsumerGroup = "shifty-decision-notifications"

// RunConsumer turns decision events into push notifications until a
// shutdown signal arrives.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	employeeRepo := employee.NewRepository(db)
	sender := notification.NewOneSignalClient(cfg.OneSignalAppID, cfg.OneSignalAPIKey, cfg.OneSignalURL, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        decisionConsumerGroup,
		GroupTopics:    consumer.DecisionTopics,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer.ConsumeDecisionNotifications(ctx, reader, employeeRepo, sender, logger)

	logger.Info("consumer shutting down")
	return nil
}
