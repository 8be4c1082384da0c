package draft

import (
	"fmt"

	"orderwizard/internal/pkg/errs"
)

// Section is one collapsible part of the order wizard. Sections are filled in
// order:
//
//	Consignor ──> Consignee ──> Shipment ──> Shipping ──> PlaceOrder
//
// A submitted section can be reopened ("Change") without losing what was
// entered in it or after it.
type Section int

const (
	// SectionUnknown catches uninitialized values.
	SectionUnknown Section = iota
	SectionConsignor
	SectionConsignee
	SectionShipment
	SectionShipping
	SectionPlaceOrder
)

func getSectionStrings() map[Section]string {
	return map[Section]string{
		SectionUnknown:    "unknown",
		SectionConsignor:  "consignor",
		SectionConsignee:  "consignee",
		SectionShipment:   "shipment",
		SectionShipping:   "shipping",
		SectionPlaceOrder: "place-order",
	}
}

// getSectionSteps maps each section to the linear wizard step it is shown on:
// 1 buyer details, 2 order details, 3 shipping partner, 4 place order.
func getSectionSteps() map[Section]int {
	//nolint:exhaustive // Unknown has no step
	return map[Section]int{
		SectionConsignor:  1,
		SectionConsignee:  1,
		SectionShipment:   2,
		SectionShipping:   3,
		SectionPlaceOrder: 4,
	}
}

// ParseSection is the inverse of String.
func ParseSection(s string) (Section, error) {
	for section, str := range getSectionStrings() {
		if section != SectionUnknown && str == s {
			return section, nil
		}
	}
	return SectionUnknown, errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%q is not a wizard section", s))
}

func (s Section) Validate() error {
	if _, ok := getSectionSteps()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("section is invalid", fmt.Errorf("%d is not a valid section", s))
	}
	return nil
}

func (s Section) String() string {
	if str, ok := getSectionStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Index is the zero-based position of the section in the wizard, -1 for
// invalid sections. A section is completed when its index is below the
// draft's activeStep.
func (s Section) Index() int {
	if s.Validate() != nil {
		return -1
	}
	return int(s) - int(SectionConsignor)
}

// Step is the linear wizard step (1..4) the section belongs to, 0 if invalid.
func (s Section) Step() int {
	return getSectionSteps()[s]
}

// Next returns the section that follows s. PlaceOrder is terminal.
func (s Section) Next() (Section, error) {
	if err := s.Validate(); err != nil {
		return SectionUnknown, err
	}
	if s == SectionPlaceOrder {
		return SectionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"section is invalid",
			fmt.Errorf("%s is the last section", s),
		)
	}
	return s + 1, nil
}

// MarshalText lets sections travel as their names in JSON.
func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Section) UnmarshalText(b []byte) error {
	parsed, err := ParseSection(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SectionCount is the number of valid sections.
const SectionCount = int(SectionPlaceOrder)

// StepCount is the number of linear wizard steps.
const StepCount = 4
