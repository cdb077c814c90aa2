// Package kafka publishes domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"logistics/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Producer)(nil)

// Writer is the part of kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer implements ports.EventPublisher. Events are JSON encoded and keyed
// by aggregate id, so events of one shipment stay in one partition and keep
// their order.
type Producer struct {
	writer Writer
	logger *slog.Logger
}

// NewProducer connects to brokers, a comma separated host:port list.
func NewProducer(brokers, topic string, logger *slog.Logger) (*Producer, error) {
	addrs := make([]string, 0)
	for _, addr := range strings.Split(brokers, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	if len(addrs) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("kafka topic is required")
	}

	w := &skafka.Writer{
		Addr:         skafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return NewProducerWithWriter(w, logger), nil
}

func NewProducerWithWriter(w Writer, logger *slog.Logger) *Producer {
	return &Producer{
		writer: w,
		logger: logger.With("component", "kafka_producer"),
	}
}

func (p *Producer) Publish(ctx context.Context, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := skafka.Message{Key: []byte(key), Value: value, Time: time.Now()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event %s: %w", key, err)
	}

	p.logger.DebugContext(ctx, "event published", "key", key, "bytes", len(value))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
