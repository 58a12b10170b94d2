package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/namvu-dev/folioforge/adapters/event"
	"github.com/namvu-dev/folioforge/adapters/persistence"
	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/config"
	"github.com/namvu-dev/folioforge/pkg/logger"
)

// The worker consumes view events and folds them into per-portfolio
// counters in Redis, keeping the hot render path free of counter writes.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting FolioForge Worker...")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	viewCounter := persistence.NewViewCounter(redisClient)

	viewConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicViewEvents,
		GroupID:  "view-counter-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer viewConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicViewEvents))

	ctx := context.Background()
	for {
		msg, err := viewConsumer.FetchMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message from Kafka", err)
			continue
		}

		var ev service.ViewEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Error("failed to unmarshal view event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(ctx, viewConsumer, msg, appLogger)
			continue
		}

		if err := viewCounter.Increment(ctx, ev.PortfolioID.String()); err != nil {
			// Leave the message uncommitted so it is retried.
			appLogger.Error("failed to increment view counter", err, zap.String("portfolio_id", ev.PortfolioID.String()))
			continue
		}

		appLogger.Debug("counted view",
			zap.String("portfolio_id", ev.PortfolioID.String()),
			zap.String("lookup", ev.LookupKind+":"+ev.LookupValue),
		)
		commitMessage(ctx, viewConsumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("failed to commit message", err)
	}
}
