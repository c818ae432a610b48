package audit

import (
	"context"
	"log/slog"
)

// Worker drains the publisher outbox into a Sink. Sink failures are logged
// and dropped; events are already durable in the store.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Publish(ctx, event); err != nil {
				w.logger.Error("audit sink publish failed",
					"action", event.Action, "event_id", event.ID, "error", err)
			}
		}
	}
}
