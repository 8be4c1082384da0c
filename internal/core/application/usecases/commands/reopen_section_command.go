package commands

import (
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
)

// ReopenSectionCommand opens an already submitted section for changes.
type ReopenSectionCommand struct {
	draftCommand
	section draft.Section
}

func NewReopenSectionCommand(draftID kernel.UUID, section draft.Section) (ReopenSectionCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return ReopenSectionCommand{}, err
	}
	if err = section.Validate(); err != nil {
		return ReopenSectionCommand{}, err
	}
	return ReopenSectionCommand{draftCommand: base, section: section}, nil
}

func (c ReopenSectionCommand) Section() draft.Section {
	return c.section
}

// GoBackCommand reopens the section before the open one.
type GoBackCommand struct {
	draftCommand
}

func NewGoBackCommand(draftID kernel.UUID) (GoBackCommand, error) {
	base, err := newDraftCommand(draftID)
	if err != nil {
		return GoBackCommand{}, err
	}
	return GoBackCommand{draftCommand: base}, nil
}
