package port

import (
	"context"

	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/events"
)

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
