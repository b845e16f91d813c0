package logsink

import (
	"context"
	"time"

	"terra-assistant-be/pkg/events"
)

// EventPublisher is satisfied by nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// NATSSink forwards each turn record to the CHATLOGS JetStream stream so a
// downstream consumer can archive or analyze conversations.
type NATSSink struct {
	publisher EventPublisher
}

func NewNATSSink(publisher EventPublisher) *NATSSink {
	return &NATSSink{publisher: publisher}
}

func (s *NATSSink) Append(ctx context.Context, record Record) error {
	return s.publisher.Publish(ctx, events.BaseEvent{
		Type: "turn",
		Data: map[string]interface{}{
			"timestamp":         record.Timestamp.UTC().Format(time.RFC3339),
			"session_id":        record.SessionID,
			"name":              record.Contact.Name,
			"email":             record.Contact.Email,
			"company":           record.Contact.Company,
			"phone":             record.Contact.Phone,
			"country":           record.Contact.Country,
			"question":          record.Question,
			"response":          record.Response,
			"intent":            record.Intent,
			"handoff_triggered": record.HandoffTriggered,
			"message_number":    record.MessageNumber,
			"booking_ref":       record.BookingRef,
		},
		OccurredAt: record.Timestamp,
	})
}
