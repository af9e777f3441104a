package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"cora/pkg/requestcontext"
)

// Publisher hands events to the background worker over a buffered channel.
// Emit never blocks domain logic: when the buffer is full the event is
// dropped with a log line. The trail is best-effort.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher creates a publisher with the given buffer size.
func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{inbox: make(chan Event, buffer), logger: logger}
}

// Events exposes the inbox for the worker to drain.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}

// Emit stamps and enqueues an event. Safe to call on a nil publisher.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"action", event.Action,
			"subject", event.Subject,
		)
	}
}
