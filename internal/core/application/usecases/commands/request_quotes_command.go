package commands

import (
	"orderwizard/internal/core/domain/model/kernel"
)

// RequestQuotesCommand fetches carrier prices for the draft's package and
// keeps them on the draft so one of them can be chosen.
type RequestQuotesCommand struct {
	draftCommand
}

func NewRequestQuotesCommand(draftID kernel.UUID) (RequestQuotesCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return RequestQuotesCommand{}, err
	}
	return RequestQuotesCommand{draftCommand: base}, nil
}
