package form

import (
	"fmt"
	"regexp"
	"strings"

	"orderwizard/internal/pkg/errs"
)

var (
	alnumPattern    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	hsn8Pattern     = regexp.MustCompile(`^\d{8}$`)
	hsn4to8Pattern  = regexp.MustCompile(`^\d{4,8}$`)
)

// HSNPolicy chooses how long a Harmonized System code has to be.
type HSNPolicy int

const (
	// HSNExactlyEight accepts 8-digit codes only.
	HSNExactlyEight HSNPolicy = iota
	// HSNFourToEight also accepts the shorter chapter and heading codes.
	HSNFourToEight
)

// ParseHSNPolicy reads "8" or "4-8".
func ParseHSNPolicy(s string) (HSNPolicy, error) {
	switch strings.TrimSpace(s) {
	case "", "8":
		return HSNExactlyEight, nil
	case "4-8":
		return HSNFourToEight, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("hsn policy", fmt.Errorf("%q is not one of 8, 4-8", s))
	}
}

// Policy holds the rules that differ between deployments.
type Policy struct {
	HSN             HSNPolicy
	OrderIDRequired bool
}

// Rules validates wizard sections under a Policy. It is safe for concurrent use.
type Rules struct {
	hsn     Field
	orderID Field
}

func NewRules(policy Policy) *Rules {
	r := &Rules{
		hsn: Field{
			Name:     "hsn",
			Kind:     KindPattern,
			Required: "HSN is required",
			Format:   "HSN must be of 8 digits",
			Pattern:  hsn8Pattern,
		},
		orderID: Field{Name: "orderId", Kind: KindOptionalText},
	}
	if policy.HSN == HSNFourToEight {
		r.hsn.Format = "HSN must be of 4 to 8 digits"
		r.hsn.Pattern = hsn4to8Pattern
	}
	if policy.OrderIDRequired {
		r.orderID = Field{Name: "orderId", Kind: KindText, Required: "Order ID is required"}
	}
	return r
}

// DefaultRules uses 8-digit HSN codes and an optional order id.
func DefaultRules() *Rules {
	return NewRules(Policy{})
}

// ValidateConsignor returns a *errs.ValidationError when the section is incomplete.
func (r *Rules) ValidateConsignor(c Consignor) error {
	v := errs.NewValidationError()
	check(v, consignorFields()[0], Text(c.PickupAddress))
	return v.Err()
}

// ValidateConsignee checks the shipping block, and the billing block unless
// SameAsBilling is set.
func (r *Rules) ValidateConsignee(c Consignee) error {
	v := errs.NewValidationError()
	validateContact(v, "shipping", c.Shipping)
	if !c.SameAsBilling {
		validateContact(v, "billing", c.Billing)
	}
	return v.Err()
}

// ValidateShipment checks the package, the invoice and every item. Item
// failures are keyed "items[i].field".
func (r *Rules) ValidateShipment(s Shipment) error {
	v := errs.NewValidationError()

	values := s.packageValues()
	for i, f := range packageFields() {
		check(v, f, values[i])
	}
	check(v, r.orderID, Text(s.OrderID))

	if len(s.Items) == 0 {
		v.Add("items", "At least one item is required")
	}
	for i, item := range s.Items {
		v.Merge(fmt.Sprintf("items[%d]", i), r.validateItem(item))
	}

	return v.Err()
}

// ValidateItem checks a single invoice line.
func (r *Rules) ValidateItem(item Item) error {
	return r.validateItem(item).Err()
}

func (r *Rules) validateItem(item Item) *errs.ValidationError {
	v := errs.NewValidationError()
	values := item.values()
	for i, f := range itemFields(r.hsn) {
		check(v, f, values[i])
	}
	return v
}
