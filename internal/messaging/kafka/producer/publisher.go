package producer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event is one storefront activity record. The aggregate ID keys the
// Kafka message so events for the same cart stay ordered per partition.
type Event struct {
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       []byte
}

// Sink is what services publish through. The cart service treats
// publishing as best effort; a failed publish never fails the mutation.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher wraps a kafka writer. A nil writer yields a publisher
// that drops every event, so the storefront runs without a broker.
func NewPublisher(writer *kafka.Writer, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if p.writer == nil {
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("failed to publish event",
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}
