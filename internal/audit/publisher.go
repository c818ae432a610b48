package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	id "velos/pkg/domain"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily. When an
// outbox channel is attached, every stored event is also queued for the sink
// worker; a full outbox never blocks the pipeline.
type Publisher struct {
	store  Store
	outbox chan<- Event
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, logger: logger}
}

// WithOutbox attaches the channel consumed by a sink Worker.
func (p *Publisher) WithOutbox(outbox chan<- Event) *Publisher {
	p.outbox = outbox
	return p
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now().UTC()
	}
	if base.Category == "" {
		base.Category = AuditEvent(base.Action).Category()
	}
	if err := p.store.Append(ctx, base); err != nil {
		return err
	}
	if p.outbox != nil {
		select {
		case p.outbox <- base:
		default:
			p.logger.Warn("audit outbox full, sink delivery skipped",
				"action", base.Action, "candidate_id", base.CandidateID)
		}
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, candidateID id.CandidateID) ([]Event, error) {
	return p.store.ListByCandidate(ctx, candidateID)
}
