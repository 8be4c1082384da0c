package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// PlaceOrderCommandHandler submits a finished draft to the order service.
//
// Business Rules:
//   - The draft must be on the place-order section with a shipping option chosen
//   - Every section is validated again before anything is sent
//   - On success the draft raises OrderPlaced and starts over empty
//   - When the order service fails the draft is left as it was
type PlaceOrderCommandHandler struct {
	uowFactory DraftUoWFactory
	controller services.SectionController
	calculator services.Calculator
	gateway    ports.OrderGateway
	metrics    ports.WizardMetrics
	now        Clock
}

func NewPlaceOrderCommandHandler(
	uowFactory DraftUoWFactory,
	controller services.SectionController,
	calculator services.Calculator,
	gateway ports.OrderGateway,
	metrics ports.WizardMetrics,
	now Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		calculator: calculator,
		gateway:    gateway,
		metrics:    metrics,
		now:        now,
	}
}

// Handle returns the reference the order service gave the order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var reference string
	err := changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		if err := h.controller.CanPlaceOrder(d); err != nil {
			return err
		}

		summary, err := h.calculator.Summarize(d)
		if err != nil {
			return err
		}

		receipt, err := h.gateway.Submit(ctx, d.Data())
		if err != nil {
			return err
		}

		reference = receipt.Reference
		return d.MarkPlaced(reference, summary.OrderTotal, *summary.ShippingTotal, h.now())
	})
	if err != nil {
		return "", err
	}

	h.metrics.OrderPlaced()
	return reference, nil
}
