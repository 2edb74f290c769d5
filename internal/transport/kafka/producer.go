package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"

	"service-delivery-admin/internal/service/notifications"
)

type counter interface {
	Inc()
}

// seam for tests
var newSyncProducer = sarama.NewSyncProducer

// Producer publishes order events to a Kafka topic.
type Producer struct {
	sp        sarama.SyncProducer
	topic     string
	published counter
}

// NewProducer creates a new Kafka producer. It returns (nil, nil) when Kafka
// is not configured so the API can run without a broker.
func NewProducer(brokers []string, topic string, published counter) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	sp, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Producer{sp: sp, topic: topic, published: published}, nil
}

// PublishOrderCreated sends a single order-created event. Messages are keyed
// by order id so events for one order stay in partition order.
func (p *Producer) PublishOrderCreated(ctx context.Context, e notifications.OrderCreatedEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := json.Marshal(FromDomain(e))
	if err != nil {
		return fmt.Errorf("encode order %d event: %w", e.OrderID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(e.OrderID, 10)),
		Value: sarama.ByteEncoder(b),
	}
	if _, _, err := p.sp.SendMessage(msg); err != nil {
		return fmt.Errorf("publish order %d event: %w", e.OrderID, err)
	}
	if p.published != nil {
		p.published.Inc()
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.sp.Close()
}
