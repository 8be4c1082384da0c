package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// SelectShippingOptionCommandHandler stores the chosen carrier and moves the
// draft on to placing the order. The price kept is the quoted one.
type SelectShippingOptionCommandHandler struct {
	uowFactory DraftUoWFactory
	controller services.SectionController
	metrics    ports.WizardMetrics
}

func NewSelectShippingOptionCommandHandler(
	uowFactory DraftUoWFactory,
	controller services.SectionController,
	metrics ports.WizardMetrics,
) SelectShippingOptionCommandHandler {
	return SelectShippingOptionCommandHandler{uowFactory: uowFactory, controller: controller, metrics: metrics}
}

func (h *SelectShippingOptionCommandHandler) Handle(ctx context.Context, cmd SelectShippingOptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		err := h.controller.SelectShippingOption(d, cmd.OptionID())
		return recordSubmission(h.metrics, draft.SectionShipping, err)
	})
}
