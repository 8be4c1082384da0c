package queries

import (
	"errors"
	"strings"
	"time"

	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var (
	ErrGetKycCustomersQueryIsNotConstructed = errors.New(
		"GetKycCustomersQuery must be created via NewGetKycCustomersQuery constructor",
	)
	ErrGetKycDocumentsQueryIsNotConstructed = errors.New(
		"GetKycDocumentsQuery must be created via NewGetKycDocumentsQuery constructor",
	)
)

// GetKycCustomersQuery lists customers for the verification dashboard,
// optionally only one customer type.
type GetKycCustomersQuery struct {
	customerType kyc.CustomerType
	guard        guard.ConstructorGuard
}

// NewGetKycCustomersQuery filters by customerType unless it is empty.
func NewGetKycCustomersQuery(customerType string) (GetKycCustomersQuery, error) {
	t := kyc.CustomerType(strings.ToLower(strings.TrimSpace(customerType)))
	if t != "" {
		if err := t.Validate(); err != nil {
			return GetKycCustomersQuery{}, err
		}
	}
	return GetKycCustomersQuery{customerType: t, guard: guard.NewConstructorGuard()}, nil
}

func (q GetKycCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetKycCustomersQueryIsNotConstructed)
}

// CustomerType is empty when every type is listed.
func (q GetKycCustomersQuery) CustomerType() kyc.CustomerType {
	return q.customerType
}

// KycCustomerResponse is one dashboard row.
type KycCustomerResponse struct {
	ID                   string
	FirstName            string
	LastName             string
	CompletionDate       time.Time
	DoneByEmail          string
	DoneByPhone          string
	VerifiedBy           string
	CustomerType         kyc.CustomerType
	KycStatus            kyc.KycStatus
	CsbStatus            kyc.CsbStatus
	LastVerificationDate *time.Time
	Submitted            bool
	DocumentCount        int
	ApprovedCount        int
}

// GetKycDocumentsQuery lists one customer's documents.
type GetKycDocumentsQuery struct {
	customerID string
	guard      guard.ConstructorGuard
}

func NewGetKycDocumentsQuery(customerID string) (GetKycDocumentsQuery, error) {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return GetKycDocumentsQuery{}, errs.NewValueIsRequiredError("customer id")
	}
	return GetKycDocumentsQuery{customerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetKycDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetKycDocumentsQueryIsNotConstructed)
}

func (q GetKycDocumentsQuery) CustomerID() string {
	return q.customerID
}

// KycDocumentResponse is one row of the document review table.
type KycDocumentResponse struct {
	ID          int
	Name        string
	FileName    string
	Number      string
	LastUpdated time.Time
	Status      kyc.DocumentStatus
	Selected    bool
}
