package logsink

import (
	"context"
	"time"

	"terra-assistant-be/pkg/store"
)

// Record is the write-only log entry produced once per user turn.
type Record struct {
	Timestamp        time.Time     `json:"timestamp"`
	SessionID        string        `json:"session_id"`
	Contact          store.Contact `json:"contact"`
	Question         string        `json:"question"`
	Response         string        `json:"response"`
	Intent           string        `json:"intent"`
	HandoffTriggered bool          `json:"handoff_triggered"`
	MessageNumber    int           `json:"message_number"`
	BookingRef       string        `json:"booking_ref,omitempty"`
}

// Sink accepts records as an append operation. Sinks are fire-and-forget
// from the orchestrator's perspective: a failure must never fail the turn.
type Sink interface {
	Append(ctx context.Context, record Record) error
}

// Nop discards records. Used when no sink is configured and in tests.
type Nop struct{}

func (Nop) Append(ctx context.Context, record Record) error { return nil }
