package commands

import (
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
)

// SubmitShipmentCommand submits the package, invoice and items section.
type SubmitShipmentCommand struct {
	draftCommand
	shipment form.Shipment
}

func NewSubmitShipmentCommand(draftID kernel.UUID, shipment form.Shipment) (SubmitShipmentCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return SubmitShipmentCommand{}, err
	}
	return SubmitShipmentCommand{draftCommand: base, shipment: shipment}, nil
}

func (c SubmitShipmentCommand) Shipment() form.Shipment {
	return c.shipment
}
