package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hris-web/internal/shared/contextutil"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher writes domain events straight to Kafka. It satisfies events.Publisher.
type Publisher struct {
	writer messageWriter
	logger *zap.Logger
}

func NewPublisher(writer messageWriter, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.producer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer")
	}
	return &Publisher{writer: writer, logger: l}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	rid := contextutil.GetRequestID(ctx)
	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "request_id", Value: []byte(rid)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			zap.String("request_id", rid),
			zap.String("topic", topic),
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info("event published",
		zap.String("request_id", rid),
		zap.String("topic", topic),
		zap.String("key", key),
	)
	return nil
}
