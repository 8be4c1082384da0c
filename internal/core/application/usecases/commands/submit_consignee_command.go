package commands

import (
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
)

// SubmitConsigneeCommand submits the receiver section: shipping address,
// the sameAsBilling flag and, when that is off, the billing address.
type SubmitConsigneeCommand struct {
	draftCommand
	consignee form.Consignee
}

func NewSubmitConsigneeCommand(draftID kernel.UUID, consignee form.Consignee) (SubmitConsigneeCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return SubmitConsigneeCommand{}, err
	}
	return SubmitConsigneeCommand{draftCommand: base, consignee: consignee}, nil
}

func (c SubmitConsigneeCommand) Consignee() form.Consignee {
	return c.consignee
}
