package commands

import (
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"
)

// AddItemCommand appends a blank invoice line to the draft.
type AddItemCommand struct {
	draftCommand
}

func NewAddItemCommand(draftID kernel.UUID) (AddItemCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return AddItemCommand{}, err
	}
	return AddItemCommand{draftCommand: base}, nil
}

// RemoveItemCommand deletes the invoice line at index.
type RemoveItemCommand struct {
	draftCommand
	index int
}

func NewRemoveItemCommand(draftID kernel.UUID, index int) (RemoveItemCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return RemoveItemCommand{}, err
	}
	if index < 0 {
		return RemoveItemCommand{}, errs.NewValueIsInvalidError("item index")
	}
	return RemoveItemCommand{draftCommand: base, index: index}, nil
}

func (c RemoveItemCommand) Index() int {
	return c.index
}

// ResetDraftCommand throws away everything entered and starts the wizard over.
type ResetDraftCommand struct {
	draftCommand
}

func NewResetDraftCommand(draftID kernel.UUID) (ResetDraftCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return ResetDraftCommand{}, err
	}
	return ResetDraftCommand{draftCommand: base}, nil
}
