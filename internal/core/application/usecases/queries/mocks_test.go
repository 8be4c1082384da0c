package queries_test

import (
	"context"
	"testing"
	"time"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDraftReader struct{ mock.Mock }

func (m *MockDraftReader) Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*draft.Draft), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCountryDirectory struct{ mock.Mock }

func (m *MockCountryDirectory) Countries(ctx context.Context) ([]kernel.CodeLabel, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]kernel.CodeLabel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCountryDirectory) States(ctx context.Context, countryCode string) ([]kernel.CodeLabel, error) {
	args := m.Called(ctx, countryCode)
	if v := args.Get(0); v != nil {
		return v.([]kernel.CodeLabel), args.Error(1)
	}
	return nil, args.Error(1)
}

func controller() services.SectionController {
	return services.NewSectionController(form.DefaultRules())
}

func calculator(t *testing.T) services.Calculator {
	t.Helper()
	c, err := services.NewCalculator(decimal.RequireFromString("2765.16"))
	require.NoError(t, err)
	return c
}

// wizardDraft returns a draft with every section before section submitted.
func wizardDraft(t *testing.T, section draft.Section) *draft.Draft {
	t.Helper()

	d, err := draft.NewDraft(kernel.NewUUID())
	require.NoError(t, err)

	shipment := form.NewShipment()
	shipment.ActualWeight = "5"
	shipment.Length, shipment.Breadth, shipment.Height = "10", "10", "10"
	shipment.InvoiceNo = "INV42"
	shipment.InvoiceDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	shipment.Items = []form.Item{
		{ProductName: "Tea", HSN: "09024020", Qty: "2", UnitPrice: "100.25", IGST: "5"},
		{ProductName: "Mug", HSN: "69120010", Qty: "1", UnitPrice: "50", IGST: "0"},
	}

	contact := form.Contact{
		FirstName: "Asha",
		LastName:  "Rao",
		Mobile:    "9876543210",
		Email:     "asha@example.com",
		Country:   kernel.CodeLabel{Code: "US", Label: "United States"},
		Address1:  "1 Main St",
		Address2:  "Suite 2",
		Pincode:   "10001",
		City:      "New York",
		State:     "New York",
	}

	c := controller()
	steps := []func() error{
		func() error { return c.SubmitConsignor(d, form.Consignor{PickupAddress: "Warehouse 1"}) },
		func() error { return c.SubmitConsignee(d, form.Consignee{Shipping: contact, SameAsBilling: true}) },
		func() error { return c.SubmitShipment(d, shipment) },
		func() error {
			d.SetQuotes([]draft.ShippingOption{
				{ID: "shipglobal", Name: "ShipGlobal Direct", Price: decimal.NewFromInt(7722), TransitTime: "7 - 10 Days"},
			})
			return c.SelectShippingOption(d, "shipglobal")
		},
	}
	for _, step := range steps[:section.Index()] {
		require.NoError(t, step())
	}
	return d
}
