package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/namvu-dev/folioforge/internal/application/service"
	"github.com/namvu-dev/folioforge/internal/config"
)

const (
	TopicViewEvents    = "portfolio.view.events"
	TopicPublishEvents = "portfolio.publish.events"
)

type KafkaProducerClient struct {
	ViewEventsWriter    *kafka.Writer
	PublishEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	viewWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicViewEvents,
		Balancer: &kafka.LeastBytes{},
	}

	publishWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPublishEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ViewEventsWriter:    viewWriter,
		PublishEventsWriter: publishWriter,
	}, nil
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func (c *KafkaProducerClient) PublishView(ctx context.Context, ev service.ViewEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal view event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.PortfolioID.String()),
		Value: value,
	}
	return c.ViewEventsWriter.WriteMessages(ctx, msg)
}

func (c *KafkaProducerClient) PublishPublish(ctx context.Context, ev service.PublishEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal publish event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.PortfolioID.String()),
		Value: value,
	}
	return c.PublishEventsWriter.WriteMessages(ctx, msg)
}

func (c *KafkaProducerClient) Close() {
	if c.ViewEventsWriter != nil {
		c.ViewEventsWriter.Close()
	}
	if c.PublishEventsWriter != nil {
		c.PublishEventsWriter.Close()
	}
}
