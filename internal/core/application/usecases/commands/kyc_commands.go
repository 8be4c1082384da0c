package commands

import (
	"errors"
	"strings"

	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var ErrKycCommandIsNotConstructed = errors.New(
	"kyc command must be created via its constructor",
)

// kycCommand is the part every KYC review command shares: the customer under review.
type kycCommand struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

func newKycCommand(customerID string) (kycCommand, error) {
	if strings.TrimSpace(customerID) == "" {
		return kycCommand{}, errs.NewValueIsRequiredError("customer id")
	}
	return kycCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c kycCommand) Validate() error {
	return c.guard.Validate(ErrKycCommandIsNotConstructed)
}

func (c kycCommand) CustomerID() string {
	return c.customerID
}

// ToggleDocumentSelectionCommand flips the reviewer's mark on one document.
type ToggleDocumentSelectionCommand struct {
	kycCommand
	documentID int
}

func NewToggleDocumentSelectionCommand(customerID string, documentID int) (ToggleDocumentSelectionCommand, error) {
	base, err := newKycCommand(customerID)
	if err != nil {
		return ToggleDocumentSelectionCommand{}, err
	}
	if documentID <= 0 {
		return ToggleDocumentSelectionCommand{}, errs.NewValueIsInvalidError("document id")
	}
	return ToggleDocumentSelectionCommand{kycCommand: base, documentID: documentID}, nil
}

func (c ToggleDocumentSelectionCommand) DocumentID() int {
	return c.documentID
}

// UpdateDocumentStatusCommand records a reviewer's verdict on one document.
type UpdateDocumentStatusCommand struct {
	kycCommand
	documentID int
	status     kyc.DocumentStatus
}

func NewUpdateDocumentStatusCommand(
	customerID string,
	documentID int,
	status kyc.DocumentStatus,
) (UpdateDocumentStatusCommand, error) {
	base, err := newKycCommand(customerID)
	if err != nil {
		return UpdateDocumentStatusCommand{}, err
	}
	if documentID <= 0 {
		return UpdateDocumentStatusCommand{}, errs.NewValueIsInvalidError("document id")
	}
	if err = status.Validate(); err != nil {
		return UpdateDocumentStatusCommand{}, err
	}
	return UpdateDocumentStatusCommand{kycCommand: base, documentID: documentID, status: status}, nil
}

func (c UpdateDocumentStatusCommand) DocumentID() int            { return c.documentID }
func (c UpdateDocumentStatusCommand) Status() kyc.DocumentStatus { return c.status }

// SubmitKycDocumentsCommand closes a customer's review round.
type SubmitKycDocumentsCommand struct {
	kycCommand
}

func NewSubmitKycDocumentsCommand(customerID string) (SubmitKycDocumentsCommand, error) {
	base, err := newKycCommand(customerID)
	if err != nil {
		return SubmitKycDocumentsCommand{}, err
	}
	return SubmitKycDocumentsCommand{kycCommand: base}, nil
}

// UpdateCsbStatusCommand sets whether the customer may ship under CSB V.
type UpdateCsbStatusCommand struct {
	kycCommand
	status kyc.CsbStatus
}

func NewUpdateCsbStatusCommand(customerID string, status kyc.CsbStatus) (UpdateCsbStatusCommand, error) {
	base, err := newKycCommand(customerID)
	if err != nil {
		return UpdateCsbStatusCommand{}, err
	}
	if err = status.Validate(); err != nil {
		return UpdateCsbStatusCommand{}, err
	}
	return UpdateCsbStatusCommand{kycCommand: base, status: status}, nil
}

func (c UpdateCsbStatusCommand) Status() kyc.CsbStatus {
	return c.status
}
