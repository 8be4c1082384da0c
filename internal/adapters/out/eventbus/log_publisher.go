package eventbus

import (
	"context"
	"log/slog"

	"orderwizard/internal/core/domain/model/draft"
)

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...draft.DomainEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "domain event",
			"type", e.EventName(),
			"aggregate_id", e.AggregateID().String(),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
