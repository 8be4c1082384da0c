package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// SubmitConsigneeCommandHandler validates the consignee section, syncs billing
// from shipping when asked to and moves the draft on to the shipment section.
type SubmitConsigneeCommandHandler struct {
	uowFactory DraftUoWFactory
	controller services.SectionController
	metrics    ports.WizardMetrics
}

func NewSubmitConsigneeCommandHandler(
	uowFactory DraftUoWFactory,
	controller services.SectionController,
	metrics ports.WizardMetrics,
) SubmitConsigneeCommandHandler {
	return SubmitConsigneeCommandHandler{uowFactory: uowFactory, controller: controller, metrics: metrics}
}

func (h *SubmitConsigneeCommandHandler) Handle(ctx context.Context, cmd SubmitConsigneeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		err := h.controller.SubmitConsignee(d, cmd.Consignee())
		return recordSubmission(h.metrics, draft.SectionConsignee, err)
	})
}
