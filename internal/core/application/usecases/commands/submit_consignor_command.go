package commands

import (
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
)

// SubmitConsignorCommand submits the pickup address section.
type SubmitConsignorCommand struct {
	draftCommand
	consignor form.Consignor
}

func NewSubmitConsignorCommand(draftID kernel.UUID, consignor form.Consignor) (SubmitConsignorCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return SubmitConsignorCommand{}, err
	}
	return SubmitConsignorCommand{draftCommand: base, consignor: consignor}, nil
}

func (c SubmitConsignorCommand) Consignor() form.Consignor {
	return c.consignor
}
