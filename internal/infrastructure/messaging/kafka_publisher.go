package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/port"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/events"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/kafka"
)

// KafkaEventPublisher publishes domain events to a Kafka topic as JSON
// envelopes, keyed by aggregate ID so events for one quote stay ordered.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaEventPublisher creates a publisher writing to the given topic.
func NewKafkaEventPublisher(producer *kafka.Producer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

var _ port.EventPublisher = (*KafkaEventPublisher)(nil)

// Publish serializes and sends the events.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshaling event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_id":       evt.EventID(),
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return err
	}

	for _, evt := range evts {
		slog.Debug("published domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"topic", p.topic)
	}
	return nil
}
