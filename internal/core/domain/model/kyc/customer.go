package kyc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer")
	ErrDocumentNotFound         = errors.New("document not found")
)

// Profile is the descriptive part of a customer record.
type Profile struct {
	FirstName      string
	LastName       string
	CompletionDate time.Time
	DoneByEmail    string
	DoneByPhone    string
	VerifiedBy     string
	Type           CustomerType
}

// Customer is the aggregate root for a customer's KYC review.
//
// Customer follows these invariants:
//   - Has a non-empty id
//   - KYC and CSB V statuses are always valid values
//   - Documents are only changed through the customer
type Customer struct {
	id                   string
	profile              Profile
	kycStatus            KycStatus
	csbStatus            CsbStatus
	lastVerificationDate *time.Time
	submitted            bool
	documents            []*Document
	guard                guard.ConstructorGuard
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(
	id string,
	profile Profile,
	kycStatus KycStatus,
	csbStatus CsbStatus,
	lastVerificationDate *time.Time,
	submitted bool,
	documents []*Document,
) (*Customer, error) {
	c := &Customer{
		profile:              profile,
		lastVerificationDate: lastVerificationDate,
		submitted:            submitted,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		profile.Type.Validate(),
		c.setKycStatus(kycStatus),
		c.setCsbStatus(csbStatus),
		c.setDocuments(documents),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() string                       { return c.id }
func (c *Customer) Profile() Profile                 { return c.profile }
func (c *Customer) KycStatus() KycStatus             { return c.kycStatus }
func (c *Customer) CsbStatus() CsbStatus             { return c.csbStatus }
func (c *Customer) LastVerificationDate() *time.Time { return c.lastVerificationDate }
func (c *Customer) Submitted() bool                  { return c.submitted }

func (c *Customer) Documents() []*Document {
	out := make([]*Document, len(c.documents))
	copy(out, c.documents)
	return out
}

// AllDocumentsApproved is true when there is at least one document and none
// is Pending or Rejected.
func (c *Customer) AllDocumentsApproved() bool {
	if len(c.documents) == 0 {
		return false
	}
	for _, d := range c.documents {
		if !d.IsApproved() {
			return false
		}
	}
	return true
}

// ToggleDocumentSelection flips the selection mark of a document.
func (c *Customer) ToggleDocumentSelection(documentID int) error {
	d, err := c.findDocument(documentID)
	if err != nil {
		return err
	}
	d.toggle()
	return nil
}

// UpdateDocumentStatus records a reviewer's verdict on a document.
func (c *Customer) UpdateDocumentStatus(documentID int, status DocumentStatus, now time.Time) error {
	d, err := c.findDocument(documentID)
	if err != nil {
		return err
	}
	return d.review(status, now)
}

// Submit closes the review round. KYC becomes Done, verified today, when every
// document is approved; otherwise the status is left as it was.
func (c *Customer) Submit(now time.Time) {
	c.submitted = true
	if c.AllDocumentsApproved() {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		c.kycStatus = KycDone
		c.lastVerificationDate = &today
	}
}

// UpdateCsbStatus sets the CSB V verdict.
func (c *Customer) UpdateCsbStatus(status CsbStatus) error {
	return c.setCsbStatus(status)
}

func (c *Customer) findDocument(id int) (*Document, error) {
	for _, d := range c.documents {
		if d.ID() == id {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("document", id,
		fmt.Errorf("%w: customer %s has no document %d", ErrDocumentNotFound, c.id, id))
}

func (c *Customer) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.id = id
	return nil
}

func (c *Customer) setKycStatus(status KycStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.kycStatus = status
	return nil
}

func (c *Customer) setCsbStatus(status CsbStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.csbStatus = status
	return nil
}

func (c *Customer) setDocuments(documents []*Document) error {
	for _, d := range documents {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	c.documents = documents
	return nil
}
