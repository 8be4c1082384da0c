package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
)

// StartDraftCommandHandler stores a fresh draft with the wizard defaults.
type StartDraftCommandHandler struct {
	uowFactory DraftUoWFactory
}

func NewStartDraftCommandHandler(uowFactory DraftUoWFactory) StartDraftCommandHandler {
	return StartDraftCommandHandler{uowFactory: uowFactory}
}

func (h *StartDraftCommandHandler) Handle(ctx context.Context, cmd StartDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := draft.NewDraft(cmd.DraftID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DraftRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
