package queries

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"
)

// DraftReader loads drafts outside a unit of work.
type DraftReader interface {
	Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error)
}

// GetDraftQueryHandler builds the wizard view of a draft. Derived figures are
// recomputed on every read and never stored.
type GetDraftQueryHandler struct {
	drafts     DraftReader
	calculator services.Calculator
	controller services.SectionController
}

func NewGetDraftQueryHandler(
	drafts DraftReader,
	calculator services.Calculator,
	controller services.SectionController,
) GetDraftQueryHandler {
	return GetDraftQueryHandler{
		drafts:     drafts,
		calculator: calculator,
		controller: controller,
	}
}

func (h GetDraftQueryHandler) Handle(ctx context.Context, query GetDraftQuery) (GetDraftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQueryResponse{}, err
	}

	d, err := h.drafts.Get(ctx, query.DraftID())
	if err != nil {
		return GetDraftQueryResponse{}, err
	}

	summary, err := h.calculator.Summarize(d)
	if err != nil {
		return GetDraftQueryResponse{}, err
	}

	return GetDraftQueryResponse{
		ID:            d.ID(),
		Version:       d.Version(),
		UpdatedAt:     d.UpdatedAt(),
		Step:          d.Step(),
		ActiveSection: d.ActiveSection(),
		ActiveStep:    d.ActiveStep(),
		Data:          d.Data(),
		Quotes:        d.Quotes(),
		Summary:       summary,
		Surcharge:     h.calculator.Surcharge(),
		Sections:      sectionStates(d),
		CanPlaceOrder: h.controller.CanPlaceOrder(d) == nil,
	}, nil
}

func sectionStates(d *draft.Draft) []SectionState {
	components := sectionComponents()
	states := make([]SectionState, 0, draft.SectionCount)
	for s := draft.SectionConsignor; s <= draft.SectionPlaceOrder; s++ {
		open := d.ActiveSection() == s
		completed := d.IsCompleted(s)
		states = append(states, SectionState{
			Section:   s,
			Component: components[s],
			Completed: completed,
			Open:      open,
			CanReopen: completed && !open,
			Reopened:  completed && s > d.ActiveSection(),
		})
	}
	return states
}
