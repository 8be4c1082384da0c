// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the wizard and the KYC dashboard.
package queries

import (
	"errors"
	"time"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// GetDraftQuery loads a draft with everything the wizard shows about it.
//
// Example:
//
//	query, err := NewGetDraftQuery(draftID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetDraftQuery struct {
	draftID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetDraftQuery(draftID kernel.UUID) (GetDraftQuery, error) {
	if err := draftID.Validate(); err != nil {
		return GetDraftQuery{}, err
	}
	return GetDraftQuery{draftID: draftID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

func (q GetDraftQuery) DraftID() kernel.UUID {
	return q.draftID
}

// SectionState is how one wizard section is drawn.
type SectionState struct {
	Section draft.Section
	// Component is the form shown inside the section.
	Component string
	Completed bool
	Open      bool
	// CanReopen is true for submitted sections other than the open one.
	CanReopen bool
	// Reopened marks submitted sections after the open one while an earlier
	// section is being changed.
	Reopened bool
}

// GetDraftQueryResponse is the wizard's read model of a draft.
type GetDraftQueryResponse struct {
	ID            kernel.UUID
	Version       int64
	UpdatedAt     time.Time
	Step          int
	ActiveSection draft.Section
	ActiveStep    int
	Data          draft.FormData
	Quotes        []draft.ShippingOption
	Summary       services.Summary
	Surcharge     decimal.Decimal
	Sections      []SectionState
	CanPlaceOrder bool
}

func sectionComponents() map[draft.Section]string {
	//nolint:exhaustive // Unknown is never drawn
	return map[draft.Section]string{
		draft.SectionConsignor:  "ConsignorDetails",
		draft.SectionConsignee:  "ConsigneeDetails",
		draft.SectionShipment:   "ShipmentInformation",
		draft.SectionShipping:   "ShippingPartner",
		draft.SectionPlaceOrder: "PlaceOrder",
	}
}
