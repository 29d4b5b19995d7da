package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("quote.payment_schedule.created", "quote-123", "Quote")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}
	if event.EventType() != "quote.payment_schedule.created" {
		t.Errorf("expected event type %q, got %q", "quote.payment_schedule.created", event.EventType())
	}
	if event.AggregateID() != "quote-123" {
		t.Errorf("expected aggregate ID %q, got %q", "quote-123", event.AggregateID())
	}
	if event.AggregateType() != "Quote" {
		t.Errorf("expected aggregate type %q, got %q", "Quote", event.AggregateType())
	}
	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventUniqueIDs(t *testing.T) {
	a := NewBaseEvent("e", "agg", "Agg")
	b := NewBaseEvent("e", "agg", "Agg")
	if a.EventID() == b.EventID() {
		t.Error("expected distinct event IDs for separate events")
	}
}

func TestBaseEventMarshalsEnvelope(t *testing.T) {
	event := NewBaseEvent("quote.payment_schedule.created", "quote-123", "Quote")

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["event_type"] != "quote.payment_schedule.created" {
		t.Errorf("event_type = %v, want quote.payment_schedule.created", decoded["event_type"])
	}
	if decoded["aggregate_id"] != "quote-123" {
		t.Errorf("aggregate_id = %v, want quote-123", decoded["aggregate_id"])
	}
	if decoded["event_id"] == "" {
		t.Error("expected event_id in serialized envelope")
	}
}
