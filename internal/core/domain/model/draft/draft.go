package draft

import (
	"errors"
	"fmt"
	"time"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDraftIsNotConstructed is returned when a Draft was not created through
	// NewDraft or RestoreDraft.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

	// ErrLastItemCannotBeRemoved keeps at least one invoice line on the draft.
	ErrLastItemCannotBeRemoved = errors.New("the last item cannot be removed")
)

// Draft is an order being assembled in the wizard. It is the aggregate root
// for the form data, the wizard cursor and the carrier quotes fetched for it.
//
// Draft follows these invariants:
//   - Must have a valid unique identifier
//   - Always holds at least one item
//   - step is within 1..StepCount and activeStep within 0..SectionPlaceOrder.Index()
//   - activeSection is a valid Section
type Draft struct {
	id kernel.UUID

	data FormData

	// step is the linear wizard page (1..4)
	step int

	// activeSection is the section currently open
	activeSection Section

	// activeStep counts the sections submitted so far; it is the furthest the
	// seller has got and does not go down when a section is reopened
	activeStep int

	// quotes are the carrier options last fetched for the shipment
	quotes []ShippingOption

	// version is the persisted revision used for optimistic locking
	version int64

	updatedAt time.Time

	events []DomainEvent

	isConstructed bool
}

// NewDraft creates an empty draft positioned on the first section.
//
// Example:
//
//	d, err := draft.NewDraft(kernel.NewUUID())
//	if err != nil {
//	    // id was invalid
//	}
func NewDraft(id kernel.UUID) (*Draft, error) {
	d := &Draft{isConstructed: true}
	if err := d.setID(id); err != nil {
		return nil, err
	}
	d.Reset()
	return d, nil
}

// RestoreDraft rebuilds a draft from persistence, checking the cursor.
func RestoreDraft(
	id kernel.UUID,
	data FormData,
	step int,
	activeSection Section,
	activeStep int,
	quotes []ShippingOption,
	version int64,
	updatedAt time.Time,
) (*Draft, error) {
	d := &Draft{
		data:          data.Clone(),
		quotes:        quotes,
		version:       version,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.SetStep(step),
		d.SetActiveSection(activeSection),
		d.SetActiveStep(activeStep),
	); err != nil {
		return nil, err
	}
	d.ensureItem()

	return d, nil
}

// Validate ensures the Draft was properly constructed.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

func (d *Draft) ID() kernel.UUID          { return d.id }
func (d *Draft) Step() int                { return d.step }
func (d *Draft) ActiveSection() Section   { return d.activeSection }
func (d *Draft) ActiveStep() int          { return d.activeStep }
func (d *Draft) Version() int64           { return d.version }
func (d *Draft) UpdatedAt() time.Time     { return d.updatedAt }
func (d *Draft) Items() []form.Item       { return d.Data().Shipment.Items }
func (d *Draft) Quotes() []ShippingOption { return append([]ShippingOption(nil), d.quotes...) }

// Data returns a copy of the form data.
func (d *Draft) Data() FormData {
	return d.data.Clone()
}

// ShippingOption returns the chosen carrier quote, nil when none is chosen.
func (d *Draft) ShippingOption() *ShippingOption {
	return d.Data().ShippingOption
}

// IsCompleted reports whether s has been submitted.
func (d *Draft) IsCompleted(s Section) bool {
	idx := s.Index()
	return idx >= 0 && idx < d.activeStep
}

// SetFormData merges patch into the form data without validating it.
func (d *Draft) SetFormData(patch FormPatch) {
	d.data = d.data.apply(patch)
	d.ensureItem()
}

// SetStep moves the linear wizard page.
func (d *Draft) SetStep(n int) error {
	if n < 1 || n > StepCount {
		return errs.NewValueIsOutOfRangeError("step", n, 1, StepCount)
	}
	d.step = n
	return nil
}

// SetActiveStep moves the furthest-completed marker.
func (d *Draft) SetActiveStep(n int) error {
	if n < 0 || n > SectionPlaceOrder.Index() {
		return errs.NewValueIsOutOfRangeError("activeStep", n, 0, SectionPlaceOrder.Index())
	}
	d.activeStep = n
	return nil
}

// SetActiveSection opens section.
func (d *Draft) SetActiveSection(section Section) error {
	if err := section.Validate(); err != nil {
		return err
	}
	d.activeSection = section
	return nil
}

// Reset restores the wizard defaults. Identity and version are kept.
func (d *Draft) Reset() {
	d.data = DefaultFormData()
	d.step = 1
	d.activeSection = SectionConsignor
	d.activeStep = 0
	d.quotes = nil
}

// AddItem appends a blank invoice line.
func (d *Draft) AddItem() {
	d.data.Shipment.Items = append(d.data.Shipment.Items, form.NewItem())
}

// RemoveItem deletes line i. The last remaining line is never removed.
func (d *Draft) RemoveItem(i int) error {
	items := d.data.Shipment.Items
	if i < 0 || i >= len(items) {
		return errs.NewValueIsOutOfRangeError("item index", i, 0, len(items)-1)
	}
	if len(items) == 1 {
		return ErrLastItemCannotBeRemoved
	}
	d.data.Shipment.Items = append(items[:i:i], items[i+1:]...)
	return nil
}

// SyncBilling copies shipping to billing while sameAsBilling is set.
func (d *Draft) SyncBilling() {
	d.data.Consignee = d.data.Consignee.WithBillingSynced()
}

// SetQuotes stores freshly fetched carrier options. A previously chosen
// option that is no longer quoted is dropped.
func (d *Draft) SetQuotes(options []ShippingOption) {
	d.quotes = append([]ShippingOption(nil), options...)
	if chosen := d.data.ShippingOption; chosen != nil {
		if _, ok := FindOption(d.quotes, chosen.ID); !ok {
			d.data.ShippingOption = nil
		}
	}
}

// ClearShippingOption forgets the chosen option and the quotes, used when the
// package changes and the old prices no longer apply.
func (d *Draft) ClearShippingOption() {
	d.data.ShippingOption = nil
	d.quotes = nil
}

// MarkPlaced records that the order collaborator accepted the draft under
// reference, raises OrderPlaced and resets the wizard for the next order.
func (d *Draft) MarkPlaced(reference string, orderTotal kernel.Money, shippingTotal decimal.Decimal, now time.Time) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	if d.data.ShippingOption == nil {
		return errs.NewValueIsRequiredErrorWithCause("shipping option", fmt.Errorf("draft %s has no shipping option", d.id))
	}

	d.raise(OrderPlaced{
		DraftID:        d.id,
		OrderReference: reference,
		Data:           d.Data(),
		Currency:       orderTotal.Currency(),
		OrderTotal:     orderTotal.Amount(),
		ShippingTotal:  shippingTotal,
		PlacedAt:       now,
	})
	d.Reset()
	return nil
}

// MarkSaved records the revision a repository stored the draft under.
func (d *Draft) MarkSaved(version int64, at time.Time) {
	d.version = version
	d.updatedAt = at
}

// Events returns the events raised since the draft was loaded.
func (d *Draft) Events() []DomainEvent {
	return append([]DomainEvent(nil), d.events...)
}

func (d *Draft) ClearEvents() {
	d.events = nil
}

func (d *Draft) raise(e DomainEvent) {
	d.events = append(d.events, e)
}

func (d *Draft) ensureItem() {
	if len(d.data.Shipment.Items) == 0 {
		d.data.Shipment.Items = []form.Item{form.NewItem()}
	}
}

func (d *Draft) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}
