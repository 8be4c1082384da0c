package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// SubmitConsignorCommandHandler validates the consignor section and, when it
// passes, moves the draft on to the consignee section.
type SubmitConsignorCommandHandler struct {
	uowFactory DraftUoWFactory
	controller services.SectionController
	metrics    ports.WizardMetrics
}

func NewSubmitConsignorCommandHandler(
	uowFactory DraftUoWFactory,
	controller services.SectionController,
	metrics ports.WizardMetrics,
) SubmitConsignorCommandHandler {
	return SubmitConsignorCommandHandler{uowFactory: uowFactory, controller: controller, metrics: metrics}
}

func (h *SubmitConsignorCommandHandler) Handle(ctx context.Context, cmd SubmitConsignorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		err := h.controller.SubmitConsignor(d, cmd.Consignor())
		return recordSubmission(h.metrics, draft.SectionConsignor, err)
	})
}
