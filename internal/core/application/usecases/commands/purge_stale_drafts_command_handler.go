package commands

import (
	"context"
)

type PurgeStaleDraftsCommandHandler struct {
	uowFactory DraftUoWFactory
	now        Clock
}

func NewPurgeStaleDraftsCommandHandler(uowFactory DraftUoWFactory, now Clock) PurgeStaleDraftsCommandHandler {
	return PurgeStaleDraftsCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle returns how many drafts were deleted.
func (h *PurgeStaleDraftsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleDraftsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.DraftRepository().DeleteUntouchedSince(ctx, h.now().Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return deleted, nil
}
