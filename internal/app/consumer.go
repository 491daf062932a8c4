package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-hris-web/internal/bootstrap"
	"go-hris-web/internal/config"
	"go-hris-web/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer records every published domain event in the audit log until
// SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        "go-hris-web-audit",
		GroupTopics:    consumer.AuditTopics,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer.ConsumeAuditTrail(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)

	logger.Info("consumer shut down")
	return nil
}
