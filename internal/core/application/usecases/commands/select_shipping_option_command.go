package commands

import (
	"strings"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"
)

// SelectShippingOptionCommand picks one of the quotes fetched for the draft.
type SelectShippingOptionCommand struct {
	draftCommand
	optionID string
}

func NewSelectShippingOptionCommand(draftID kernel.UUID, optionID string) (SelectShippingOptionCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return SelectShippingOptionCommand{}, err
	}
	if strings.TrimSpace(optionID) == "" {
		return SelectShippingOptionCommand{}, errs.NewValueIsRequiredError("shipping option id")
	}
	return SelectShippingOptionCommand{draftCommand: base, optionID: optionID}, nil
}

func (c SelectShippingOptionCommand) OptionID() string {
	return c.optionID
}
