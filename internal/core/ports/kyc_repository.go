package ports

import (
	"context"

	"orderwizard/internal/core/domain/model/kyc"
)

// KycRepository defines the persistence contract for KYC customers together
// with their documents.
type KycRepository interface {
	// Add persists a new customer and its documents.
	Add(ctx context.Context, aggregate *kyc.Customer) error

	// Update persists the customer's statuses and every document.
	Update(ctx context.Context, aggregate *kyc.Customer) error

	// Get retrieves a customer with its documents.
	Get(ctx context.Context, id string) (*kyc.Customer, error)
}
