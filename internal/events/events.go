package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("events")

// Event is a fact about an order or bill, pushed to kitchen screens and,
// when configured, to the message broker.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// New builds an Event with a fresh ID, marshalling payload as JSON.
func New(eventType string, payload any) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    body,
	}, nil
}

// Notifier receives events after the change they describe is committed.
// Implementations must not block the caller for long and report their own
// failures; the originating action has already succeeded.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}

// Multi fans an event out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, e Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, e)
		}
	}
}

// Emit builds and sends an event, logging marshal failures instead of
// returning them.
func Emit(ctx context.Context, n Notifier, eventType string, payload any) {
	if n == nil {
		return
	}
	e, err := New(eventType, payload)
	if err != nil {
		log.Errorf("build event: %v", err)
		return
	}
	n.Notify(ctx, e)
}
