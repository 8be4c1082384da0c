package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// SubmitShipmentCommandHandler validates the shipment section locally, then
// has the order service check the invoice. The draft only moves on to
// shipping selection when both agree; a refusal from the order service is
// returned with its message and leaves the draft as it was.
type SubmitShipmentCommandHandler struct {
	uowFactory DraftUoWFactory
	controller services.SectionController
	gateway    ports.OrderGateway
	metrics    ports.WizardMetrics
}

func NewSubmitShipmentCommandHandler(
	uowFactory DraftUoWFactory,
	controller services.SectionController,
	gateway ports.OrderGateway,
	metrics ports.WizardMetrics,
) SubmitShipmentCommandHandler {
	return SubmitShipmentCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		gateway:    gateway,
		metrics:    metrics,
	}
}

func (h *SubmitShipmentCommandHandler) Handle(ctx context.Context, cmd SubmitShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shipment := cmd.Shipment()
	patch := draft.FormPatch{Shipment: &shipment}

	return changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		if err := h.controller.ValidateSection(d, draft.SectionShipment, patch); err != nil {
			return recordSubmission(h.metrics, draft.SectionShipment, err)
		}

		data := d.Data()
		data.Shipment = shipment
		if err := h.gateway.ValidateInvoice(ctx, data); err != nil {
			return recordSubmission(h.metrics, draft.SectionShipment, err)
		}

		err := h.controller.Advance(d, draft.SectionShipment, patch)
		return recordSubmission(h.metrics, draft.SectionShipment, err)
	})
}
