package kafka

import (
	"testing"
)

func TestNewProducer(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092", "localhost:9093"},
	}

	p := NewProducer(cfg)
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.brokers[0] != "localhost:9092" {
		t.Errorf("expected broker localhost:9092, got %s", p.brokers[0])
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("quote-123"),
		Value: []byte(`{"term_in_months":12}`),
		Headers: map[string]string{
			"event_type": "quote.payment_schedule.created",
		},
	}

	if string(msg.Key) != "quote-123" {
		t.Errorf("expected key quote-123, got %s", string(msg.Key))
	}
	if msg.Headers["event_type"] != "quote.payment_schedule.created" {
		t.Errorf("unexpected event_type header: %s", msg.Headers["event_type"])
	}
}

func TestGetOrCreateWriterReuse(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"kafka:9092"}})

	w1 := p.getOrCreateWriter("quote.schedules")
	w2 := p.getOrCreateWriter("quote.schedules")
	if w1 != w2 {
		t.Error("expected the same writer for repeated topic")
	}
	if len(p.writers) != 1 {
		t.Errorf("expected 1 cached writer, got %d", len(p.writers))
	}

	if err := p.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected writers cleared after close, got %d", len(p.writers))
	}
}
