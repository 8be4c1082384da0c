package commands

import (
	"errors"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrDraftCommandIsNotConstructed = errors.New(
	"draft command must be created via its constructor",
)

// draftCommand is the part every draft command shares: the draft it targets.
type draftCommand struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

func newDraftCommand(draftID kernel.UUID) (draftCommand, error) {
	if err := draftID.Validate(); err != nil {
		return draftCommand{}, err
	}
	return draftCommand{draftID: draftID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c draftCommand) Validate() error {
	return c.guard.Validate(ErrDraftCommandIsNotConstructed)
}

// DraftID is the draft the command applies to.
func (c draftCommand) DraftID() kernel.UUID {
	return c.draftID
}
