package kyc

import (
	"fmt"

	"orderwizard/internal/pkg/errs"
)

// KycStatus is the overall identity verdict for a customer.
type KycStatus string

const (
	KycPending KycStatus = "Pending"
	KycDone    KycStatus = "Done"
)

func (s KycStatus) Validate() error {
	switch s {
	case KycPending, KycDone:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kyc status", fmt.Errorf("%q is not a kyc status", string(s)))
	}
}

// CsbStatus is whether the customer may ship under CSB V.
type CsbStatus string

const (
	CsbPending  CsbStatus = "Pending"
	CsbDone     CsbStatus = "Done"
	CsbRejected CsbStatus = "Rejected"
)

func (s CsbStatus) Validate() error {
	switch s {
	case CsbPending, CsbDone, CsbRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("csb status", fmt.Errorf("%q is not a csb status", string(s)))
	}
}

// DocumentStatus is the review state of one document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "Pending"
	DocumentApproved DocumentStatus = "Approved"
	DocumentRejected DocumentStatus = "Rejected"
)

func (s DocumentStatus) Validate() error {
	switch s {
	case DocumentPending, DocumentApproved, DocumentRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("document status", fmt.Errorf("%q is not a document status", string(s)))
	}
}

// CustomerType splits the dashboard into individual and business customers.
type CustomerType string

const (
	Individual CustomerType = "individual"
	Business   CustomerType = "business"
)

func (t CustomerType) Validate() error {
	switch t {
	case Individual, Business:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("customer type", fmt.Errorf("%q is not a customer type", string(t)))
	}
}
