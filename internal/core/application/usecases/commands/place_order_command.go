package commands

import (
	"orderwizard/internal/core/domain/model/kernel"
)

// PlaceOrderCommand books the order described by a finished draft.
type PlaceOrderCommand struct {
	draftCommand
}

func NewPlaceOrderCommand(draftID kernel.UUID) (PlaceOrderCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return PlaceOrderCommand{}, err
	}
	return PlaceOrderCommand{draftCommand: base}, nil
}
