package commands_test

import (
	"context"
	"testing"
	"time"

	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDraftRepository struct{ mock.Mock }

func (m *MockDraftRepository) Add(ctx context.Context, d *draft.Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDraftRepository) Update(ctx context.Context, d *draft.Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDraftRepository) Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.Draft), args.Error(1)
}

func (m *MockDraftRepository) DeleteUntouchedSince(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockDraftUoW struct{ mock.Mock }

func (m *MockDraftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDraftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDraftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDraftUoW) DraftRepository() ports.DraftRepository {
	args := m.Called()
	return args.Get(0).(ports.DraftRepository)
}

type MockDraftUoWFactory struct{ mock.Mock }

func (m *MockDraftUoWFactory) Create() commands.DraftUoW {
	args := m.Called()
	return args.Get(0).(commands.DraftUoW)
}

type MockKycRepository struct{ mock.Mock }

func (m *MockKycRepository) Add(ctx context.Context, c *kyc.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockKycRepository) Update(ctx context.Context, c *kyc.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockKycRepository) Get(ctx context.Context, id string) (*kyc.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kyc.Customer), args.Error(1)
}

type MockKycUoW struct{ mock.Mock }

func (m *MockKycUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKycUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKycUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKycUoW) KycRepository() ports.KycRepository {
	args := m.Called()
	return args.Get(0).(ports.KycRepository)
}

type MockKycUoWFactory struct{ mock.Mock }

func (m *MockKycUoWFactory) Create() commands.KycUoW {
	args := m.Called()
	return args.Get(0).(commands.KycUoW)
}

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) ValidateInvoice(ctx context.Context, data draft.FormData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockOrderGateway) Submit(ctx context.Context, data draft.FormData) (ports.OrderReceipt, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(ports.OrderReceipt), args.Error(1)
}

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) Quote(ctx context.Context, req ports.RateRequest) ([]draft.ShippingOption, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]draft.ShippingOption), args.Error(1)
}

type MockWizardMetrics struct{ mock.Mock }

func (m *MockWizardMetrics) SectionSubmitted(section draft.Section, accepted bool) {
	m.Called(section, accepted)
}

func (m *MockWizardMetrics) OrderPlaced() {
	m.Called()
}

// draftUoW wires a factory that hands out one unit of work over repo.
func draftUoW(repo *MockDraftRepository) (*MockDraftUoWFactory, *MockDraftUoW) {
	uow := new(MockDraftUoW)
	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("DraftRepository").Return(repo).Maybe()
	return factory, uow
}

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func clock() time.Time { return fixedNow }

func controller() services.SectionController {
	return services.NewSectionController(form.DefaultRules())
}

func contact() form.Contact {
	return form.Contact{
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
}

func shipment() form.Shipment {
	s := form.NewShipment()
	s.ActualWeight = "5"
	s.Length, s.Breadth, s.Height = "10", "10", "10"
	s.InvoiceNo = "INV42"
	s.InvoiceDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	s.Items = []form.Item{
		{ProductName: "Tea", HSN: "09024020", Qty: "2", UnitPrice: "100.25", IGST: "0"},
		{ProductName: "Mug", HSN: "69120010", Qty: "1", UnitPrice: "50", IGST: "0"},
	}
	return s
}

func quotes() []draft.ShippingOption {
	return []draft.ShippingOption{
		{ID: "shipglobal", Name: "ShipGlobal Direct", Price: decimal.NewFromInt(7722), TransitTime: "7 - 10 Days", IsRecommended: true},
		{ID: "dhl", Name: "DHL Express", Price: decimal.NewFromInt(15966), TransitTime: "4 - 7 Days", HasDuties: true},
	}
}

// draftAt returns a draft whose sections before section are submitted with
// valid data.
func draftAt(t *testing.T, section draft.Section) *draft.Draft {
	t.Helper()

	d, err := draft.NewDraft(kernel.NewUUID())
	require.NoError(t, err)

	c := controller()
	steps := []func() error{
		func() error { return c.SubmitConsignor(d, form.Consignor{PickupAddress: "Warehouse 1"}) },
		func() error {
			return c.SubmitConsignee(d, form.Consignee{Shipping: contact(), SameAsBilling: true})
		},
		func() error { return c.SubmitShipment(d, shipment()) },
		func() error {
			d.SetQuotes(quotes())
			return c.SelectShippingOption(d, "shipglobal")
		},
	}
	for _, step := range steps[:section.Index()] {
		require.NoError(t, step())
	}
	require.Equal(t, section, d.ActiveSection())
	return d
}
