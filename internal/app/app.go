package app

import (
	"net/http"

	"go-hris-web/internal/apiclient"
	"go-hris-web/internal/config"
	"go-hris-web/internal/events"
	"go-hris-web/internal/messaging/kafka/producer"
	"go-hris-web/internal/page"
	"go-hris-web/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and registers every module on router. The
// returned func releases connections and must run after the server stops.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("app")

	// 1. Setup Infrastructure
	client := apiclient.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout}, logger)
	closers := []func(){}

	tracker := page.NewMemoryTracker(cfg.PageLockTTL)
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		log.Info("redis connection established", zap.String("addr", cfg.RedisAddr))
		tracker = page.NewRedisTracker(rdb, cfg.PageLockTTL)
		closers = append(closers, func() { _ = rdb.Close() })
	} else {
		log.Info("REDIS_ADDR not set, page locks are kept in memory")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
		if err != nil {
			return nil, err
		}
		log.Info("kafka connection established", zap.String("broker", cfg.KafkaBroker))
		publisher = producer.NewPublisher(writer, logger)
		closers = append(closers, func() { _ = writer.Close() })
	} else {
		log.Info("KAFKA_BROKER not set, domain events are disabled")
	}

	// 2. Register Modules & Routes
	if err := registerModules(router, client, tracker, publisher, logger); err != nil {
		return nil, err
	}

	return func() {
		for _, c := range closers {
			c()
		}
	}, nil
}
