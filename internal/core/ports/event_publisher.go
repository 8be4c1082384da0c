package ports

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
)

// EventPublisher delivers domain events to the rest of the platform.
type EventPublisher interface {
	Publish(ctx context.Context, events ...draft.DomainEvent) error
}
