package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"
)

// ReopenSectionCommandHandler moves the wizard back to a submitted section.
// Values entered in that section and after it are kept.
type ReopenSectionCommandHandler struct {
	uowFactory DraftUoWFactory
	controller services.SectionController
}

func NewReopenSectionCommandHandler(
	uowFactory DraftUoWFactory,
	controller services.SectionController,
) ReopenSectionCommandHandler {
	return ReopenSectionCommandHandler{uowFactory: uowFactory, controller: controller}
}

func (h *ReopenSectionCommandHandler) Handle(ctx context.Context, cmd ReopenSectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		return h.controller.Reopen(d, cmd.Section())
	})
}

// HandleBack serves the linear wizard's Back button.
func (h *ReopenSectionCommandHandler) HandleBack(ctx context.Context, cmd GoBackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), h.controller.Back)
}
