package services

import (
	"errors"
	"fmt"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/pkg/errs"
)

var (
	// ErrSectionNotActive is returned when a section other than the open one is
	// submitted.
	ErrSectionNotActive = errors.New("section is not open")

	// ErrSectionNotCompleted is returned when reopening a section that was never
	// submitted.
	ErrSectionNotCompleted = errors.New("section has not been submitted")

	// ErrShippingOptionNotQuoted is returned when the chosen option is not among
	// the quotes fetched for the draft.
	ErrShippingOptionNotQuoted = errors.New("shipping option was not quoted")

	// ErrOrderNotReady is returned when placing an order before every section
	// has been submitted.
	ErrOrderNotReady = errors.New("order is not ready to be placed")
)

// SectionController moves a draft through the wizard:
//
//	Consignor ──> Consignee ──> Shipment ──> Shipping ──> PlaceOrder
//
// Only the open section can be submitted. A submission that fails validation
// leaves the draft untouched. Submitted sections can be reopened at any time;
// reopening keeps every value and does not revalidate what comes after.
//
// Example usage:
//
//	controller := services.NewSectionController(form.DefaultRules())
//	err := controller.SubmitConsignor(d, form.Consignor{PickupAddress: "Warehouse 1"})
//	if v, ok := errs.AsValidationError(err); ok {
//	    // show v.Fields next to the inputs
//	}
type SectionController struct {
	rules *form.Rules
}

func NewSectionController(rules *form.Rules) SectionController {
	return SectionController{rules: rules}
}

// Advance submits section with the values in patch. Only the member of patch
// that belongs to section is read.
//
// On success the values are merged into the draft, billing is synced, the
// draft moves to the next section and the furthest-completed marker is
// raised. On failure the draft is unchanged.
func (c SectionController) Advance(d *draft.Draft, section draft.Section, patch draft.FormPatch) error {
	if err := c.ensureOpen(d, section); err != nil {
		return err
	}

	accepted, err := c.accept(d, section, patch)
	if err != nil {
		return err
	}

	next, err := section.Next()
	if err != nil {
		return err
	}

	if section == draft.SectionConsignee && destinationChanged(d.Data().Consignee, *accepted.Consignee) {
		d.ClearShippingOption()
	}
	if section == draft.SectionShipment {
		d.ClearShippingOption()
	}

	d.SetFormData(accepted)
	d.SyncBilling()

	return errors.Join(
		d.SetActiveSection(next),
		d.SetActiveStep(max(d.ActiveStep(), next.Index())),
		d.SetStep(next.Step()),
	)
}

func (c SectionController) SubmitConsignor(d *draft.Draft, in form.Consignor) error {
	return c.Advance(d, draft.SectionConsignor, draft.FormPatch{Consignor: &in})
}

func (c SectionController) SubmitConsignee(d *draft.Draft, in form.Consignee) error {
	return c.Advance(d, draft.SectionConsignee, draft.FormPatch{Consignee: &in})
}

func (c SectionController) SubmitShipment(d *draft.Draft, in form.Shipment) error {
	return c.Advance(d, draft.SectionShipment, draft.FormPatch{Shipment: &in})
}

// SelectShippingOption picks one of the draft's quotes by id and moves on to
// placing the order.
func (c SectionController) SelectShippingOption(d *draft.Draft, optionID string) error {
	return c.Advance(d, draft.SectionShipping, draft.FormPatch{ShippingOption: &draft.ShippingOption{ID: optionID}})
}

// ValidateSection runs the rules for section against patch without touching
// the draft. Callers use it to check a section before asking a collaborator
// about it.
func (c SectionController) ValidateSection(d *draft.Draft, section draft.Section, patch draft.FormPatch) error {
	if err := c.ensureOpen(d, section); err != nil {
		return err
	}
	_, err := c.accept(d, section, patch)
	return err
}

// Reopen opens an already submitted section again ("Change"). Reopening the
// section that is already open does nothing.
func (c SectionController) Reopen(d *draft.Draft, section draft.Section) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := section.Validate(); err != nil {
		return err
	}
	if section == d.ActiveSection() {
		return nil
	}
	if !d.IsCompleted(section) {
		return fmt.Errorf("%w: %s", ErrSectionNotCompleted, section)
	}

	return errors.Join(
		d.SetActiveSection(section),
		d.SetStep(section.Step()),
	)
}

// Back reopens the section before the open one.
func (c SectionController) Back(d *draft.Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.ActiveSection() == draft.SectionConsignor {
		return fmt.Errorf("%w: nothing before %s", ErrSectionNotCompleted, draft.SectionConsignor)
	}
	return c.Reopen(d, d.ActiveSection()-1)
}

// CanPlaceOrder returns nil when the draft sits on PlaceOrder with every
// earlier section submitted, still valid, and a shipping option chosen.
func (c SectionController) CanPlaceOrder(d *draft.Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.ActiveSection() != draft.SectionPlaceOrder || d.ActiveStep() < draft.SectionPlaceOrder.Index() {
		return fmt.Errorf("%w: %s is open", ErrOrderNotReady, d.ActiveSection())
	}

	data := d.Data()
	if data.ShippingOption == nil {
		return fmt.Errorf("%w: no shipping option chosen", ErrOrderNotReady)
	}

	v := errs.NewValidationError()
	for _, err := range []error{
		c.rules.ValidateConsignor(data.Consignor),
		c.rules.ValidateConsignee(data.Consignee),
		c.rules.ValidateShipment(data.Shipment),
	} {
		if failed, ok := errs.AsValidationError(err); ok {
			v.Merge("", failed)
		}
	}
	return v.Err()
}

func (c SectionController) ensureOpen(d *draft.Draft, section draft.Section) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := section.Validate(); err != nil {
		return err
	}
	if section != d.ActiveSection() {
		return fmt.Errorf("%w: %s submitted while %s is open", ErrSectionNotActive, section, d.ActiveSection())
	}
	return nil
}

// accept validates the part of patch that belongs to section and returns a
// patch holding only that part.
func (c SectionController) accept(d *draft.Draft, section draft.Section, patch draft.FormPatch) (draft.FormPatch, error) {
	switch section {
	case draft.SectionConsignor:
		if patch.Consignor == nil {
			return draft.FormPatch{}, errs.NewValueIsRequiredError("consignor")
		}
		in := *patch.Consignor
		return draft.FormPatch{Consignor: &in}, c.rules.ValidateConsignor(in)

	case draft.SectionConsignee:
		if patch.Consignee == nil {
			return draft.FormPatch{}, errs.NewValueIsRequiredError("consignee")
		}
		in := patch.Consignee.WithBillingSynced()
		return draft.FormPatch{Consignee: &in}, c.rules.ValidateConsignee(in)

	case draft.SectionShipment:
		if patch.Shipment == nil {
			return draft.FormPatch{}, errs.NewValueIsRequiredError("shipment")
		}
		in := *patch.Shipment
		return draft.FormPatch{Shipment: &in}, c.rules.ValidateShipment(in)

	case draft.SectionShipping:
		if patch.ShippingOption == nil || patch.ShippingOption.ID == "" {
			return draft.FormPatch{}, errs.NewValueIsRequiredError("shipping option")
		}
		quoted, ok := draft.FindOption(d.Quotes(), patch.ShippingOption.ID)
		if !ok {
			return draft.FormPatch{}, fmt.Errorf("%w: %q", ErrShippingOptionNotQuoted, patch.ShippingOption.ID)
		}
		return draft.FormPatch{ShippingOption: &quoted}, nil

	case draft.SectionPlaceOrder, draft.SectionUnknown:
		return draft.FormPatch{}, fmt.Errorf("%w: %s is not submitted through the wizard", ErrSectionNotActive, section)
	default:
		return draft.FormPatch{}, section.Validate()
	}
}

// destinationChanged reports whether the consignee moved to another country or
// pincode, which invalidates carrier prices.
func destinationChanged(before, after form.Consignee) bool {
	return before.Shipping.Country.Code != after.Shipping.Country.Code ||
		before.Shipping.Pincode != after.Shipping.Pincode
}
