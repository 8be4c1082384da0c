package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
)

// DraftEditCommandHandler handles the draft edits that need no validation:
// adding and removing invoice lines and resetting the wizard.
type DraftEditCommandHandler struct {
	uowFactory DraftUoWFactory
}

func NewDraftEditCommandHandler(uowFactory DraftUoWFactory) DraftEditCommandHandler {
	return DraftEditCommandHandler{uowFactory: uowFactory}
}

func (h *DraftEditCommandHandler) HandleAddItem(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		d.AddItem()
		return nil
	})
}

// HandleRemoveItem fails with draft.ErrLastItemCannotBeRemoved when only one
// line is left.
func (h *DraftEditCommandHandler) HandleRemoveItem(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		return d.RemoveItem(cmd.Index())
	})
}

func (h *DraftEditCommandHandler) HandleReset(ctx context.Context, cmd ResetDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		d.Reset()
		return nil
	})
}
