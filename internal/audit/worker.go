package audit

import (
	"context"
	"log/slog"
)

// Sink receives a copy of every event the worker persists. The Kafka
// publisher implements this; nil means no external fan-out.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker drains the publisher's inbox into the store and the optional
// sink. Failures are logged and the worker keeps running: the trail never
// takes the product down.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"action", event.Action,
					"error", err,
				)
			}
			if w.sink != nil {
				if err := w.sink.Publish(ctx, event); err != nil {
					w.logger.ErrorContext(ctx, "audit sink publish failed",
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}
