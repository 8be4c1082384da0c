package form

import (
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"
)

// Consignor is the sender section: the pickup address chosen from the
// seller's saved addresses.
type Consignor struct {
	PickupAddress string `json:"pickupAddress"`
}

// Contact is one name + phone + postal address block. The consignee section
// carries two of them, shipping and billing.
type Contact struct {
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Mobile          string           `json:"mobile"`
	AlternateMobile string           `json:"alternateMobile"`
	Email           string           `json:"email"`
	Country         kernel.CodeLabel `json:"country"`
	Address1        string           `json:"address1"`
	Landmark        string           `json:"landmark"`
	Address2        string           `json:"address2"`
	Pincode         string           `json:"pincode"`
	City            string           `json:"city"`
	State           string           `json:"state"`
}

// Consignee is the receiver section. When SameAsBilling is set the billing
// block is not validated and mirrors the shipping block.
type Consignee struct {
	Shipping      Contact `json:"shipping"`
	SameAsBilling bool    `json:"sameAsBilling"`
	Billing       Contact `json:"billing"`
}

// WithBillingSynced returns c with the billing block overwritten by the
// shipping block when SameAsBilling is set. The copy is one way only.
func (c Consignee) WithBillingSynced() Consignee {
	if c.SameAsBilling {
		c.Billing = c.Shipping
	}
	return c
}

func consignorFields() []Field {
	return []Field{
		{Name: "pickupAddress", Kind: KindText, Required: "Please select a pickup address"},
	}
}

// contactFields names every field with prefix ("shipping" -> "shippingFirstName").
func contactFields(prefix string) []Field {
	return []Field{
		{Name: prefix + "FirstName", Kind: KindText, Required: "First name is required"},
		{Name: prefix + "LastName", Kind: KindText, Required: "Last name is required"},
		{
			Name:     prefix + "Mobile",
			Kind:     KindMobile,
			Required: "Mobile number must be at least 10 digits",
			Format:   "Mobile number must be exactly 10 digits",
		},
		{
			Name:   prefix + "AlternateMobile",
			Kind:   KindOptionalMobile,
			Format: "Alternate mobile number must be exactly 10 digits",
		},
		{Name: prefix + "Email", Kind: KindEmail, Format: "Invalid email address"},
		{
			Name:     prefix + "Country",
			Kind:     KindCodeLabel,
			Required: "Country code is required",
			Format:   "Country name is required",
		},
		{Name: prefix + "Address1", Kind: KindText, Required: "Address 1 is required"},
		{Name: prefix + "Landmark", Kind: KindOptionalText},
		{Name: prefix + "Address2", Kind: KindText, Required: "Address 2 is required"},
		{Name: prefix + "Pincode", Kind: KindText, Required: "Pincode is required"},
		{Name: prefix + "City", Kind: KindText, Required: "City is required"},
		{Name: prefix + "State", Kind: KindText, Required: "State is required"},
	}
}

func (c Contact) values() []Value {
	return []Value{
		Text(c.FirstName),
		Text(c.LastName),
		Text(c.Mobile),
		Text(c.AlternateMobile),
		Text(c.Email),
		Pair(c.Country),
		Text(c.Address1),
		Text(c.Landmark),
		Text(c.Address2),
		Text(c.Pincode),
		Text(c.City),
		Text(c.State),
	}
}

func validateContact(into *errs.ValidationError, prefix string, c Contact) {
	values := c.values()
	for i, f := range contactFields(prefix) {
		check(into, f, values[i])
	}
}
