// Package ports defines the contracts between the wizard's core and the
// infrastructure around it: persistence, the unit of work, the external
// services the wizard consults and the event bus.
package ports

import (
	"context"
	"time"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
)

// DraftRepository defines the persistence contract for order drafts.
// A draft is stored whole after every successful mutation so a seller can
// resume where they stopped.
type DraftRepository interface {
	// Add persists a new draft.
	Add(ctx context.Context, aggregate *draft.Draft) error

	// Update persists changes to an existing draft. It fails with
	// errs.ErrVersionIsInvalid when the draft was changed since it was loaded.
	Update(ctx context.Context, aggregate *draft.Draft) error

	// Get retrieves a draft by id, errs.ErrObjectNotFound when there is none.
	Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error)

	// DeleteUntouchedSince removes drafts not updated since before and returns
	// how many were removed.
	DeleteUntouchedSince(ctx context.Context, before time.Time) (int64, error)
}
