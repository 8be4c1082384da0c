package commands

import (
	"context"
	"errors"
	"fmt"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// RequestQuotesCommandHandler asks the rate provider to price the submitted
// shipment. The quotes replace any earlier ones; a chosen option that is no
// longer offered is dropped.
type RequestQuotesCommandHandler struct {
	uowFactory DraftUoWFactory
	rates      ports.RateProvider
}

func NewRequestQuotesCommandHandler(uowFactory DraftUoWFactory, rates ports.RateProvider) RequestQuotesCommandHandler {
	return RequestQuotesCommandHandler{uowFactory: uowFactory, rates: rates}
}

func (h *RequestQuotesCommandHandler) Handle(ctx context.Context, cmd RequestQuotesCommand) ([]draft.ShippingOption, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var quotes []draft.ShippingOption
	err := changeDraft(ctx, h.uowFactory, cmd.DraftID(), func(d *draft.Draft) error {
		if !d.IsCompleted(draft.SectionShipment) {
			return fmt.Errorf("%w: submit %s before asking for quotes", services.ErrSectionNotCompleted, draft.SectionShipment)
		}

		req, err := rateRequest(d.Data())
		if err != nil {
			return err
		}

		quotes, err = h.rates.Quote(ctx, req)
		if err != nil {
			return err
		}

		d.SetQuotes(quotes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return quotes, nil
}

// rateRequest describes the draft's package in checked units.
func rateRequest(data draft.FormData) (ports.RateRequest, error) {
	shipment := data.Shipment

	length := form.ParseDecimal(shipment.Length)
	breadth := form.ParseDecimal(shipment.Breadth)
	height := form.ParseDecimal(shipment.Height)
	actual := form.ParseDecimal(shipment.ActualWeight)

	dimensions, dimErr := kernel.NewDimensions(length, breadth, height)
	weight, weightErr := kernel.NewWeight(actual)
	invoice, invoiceErr := services.OrderTotal(shipment.Items, shipment.InvoiceCurrency)
	if err := errors.Join(dimErr, weightErr, invoiceErr); err != nil {
		return ports.RateRequest{}, err
	}

	return ports.RateRequest{
		DestinationCountry: data.Consignee.Shipping.Country.Code,
		DestinationPincode: data.Consignee.Shipping.Pincode,
		ShipmentType:       shipment.ShipmentType,
		ActualWeight:       weight,
		BilledWeight:       services.BilledWeight(actual, services.VolumetricWeight(length, breadth, height)),
		Dimensions:         dimensions,
		InvoiceValue:       invoice,
	}, nil
}
