package ports

import (
	"context"
	"errors"
	"fmt"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrServiceUnavailable marks an external service that could not be
	// reached or failed. The wizard stays where it was and the call may be
	// retried.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrServiceRejected marks a request the external service refused, such as
	// an invoice it will not accept.
	ErrServiceRejected = errors.New("request rejected")
)

// ServiceError is a failed call to an external service. Message is what the
// service said and is shown to the seller as is.
type ServiceError struct {
	Service  string
	Status   int
	Message  string
	Rejected bool
	Cause    error
}

func (e *ServiceError) sentinel() error {
	if e.Rejected {
		return ErrServiceRejected
	}
	return ErrServiceUnavailable
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %v)", e.sentinel(), e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.sentinel(), e.Service, e.Message)
}

func (e *ServiceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Cause}
}

// CountryDirectory lists countries and their states for the address pickers.
type CountryDirectory interface {
	Countries(ctx context.Context) ([]kernel.CodeLabel, error)
	States(ctx context.Context, countryCode string) ([]kernel.CodeLabel, error)
}

// RateRequest describes a package to be priced.
type RateRequest struct {
	DestinationCountry string
	DestinationPincode string
	ShipmentType       string
	ActualWeight       kernel.Weight
	BilledWeight       decimal.Decimal
	Dimensions         kernel.Dimensions
	InvoiceValue       kernel.Money
}

// RateProvider quotes carrier options for a package.
type RateProvider interface {
	Quote(ctx context.Context, req RateRequest) ([]draft.ShippingOption, error)
}

// OrderReceipt is what the order service returns for an accepted order.
type OrderReceipt struct {
	Reference string
}

// OrderGateway is the order service: it checks invoices and books orders.
type OrderGateway interface {
	// ValidateInvoice asks the order service whether the shipment's invoice is
	// acceptable. A rejection is a *ServiceError carrying the service's reason.
	ValidateInvoice(ctx context.Context, data draft.FormData) error

	// Submit books the order described by data.
	Submit(ctx context.Context, data draft.FormData) (OrderReceipt, error)
}
