package draftrepo_test

import (
	"context"
	"testing"
	"time"

	"orderwizard/internal/adapters/out/postgres/draftrepo"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type DraftRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *draftrepo.GormDraftRepository
	tracker    *MockAggregateTracker
}

func (suite *DraftRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&draftrepo.DraftDTO{}))
}

func (suite *DraftRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drafts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = draftrepo.NewGormDraftRepository(suite.db, suite.tracker)
}

func (suite *DraftRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// shippingDraft returns a draft with the first three sections submitted and
// quotes fetched.
func (suite *DraftRepositoryIntegrationTestSuite) shippingDraft() *draft.Draft {
	d, err := draft.NewDraft(kernel.NewUUID())
	suite.Require().NoError(err)

	controller := services.NewSectionController(form.DefaultRules())
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
	shipment := form.NewShipment()
	shipment.ActualWeight = "5"
	shipment.Length, shipment.Breadth, shipment.Height = "10", "10", "10"
	shipment.InvoiceNo = "INV42"
	shipment.InvoiceDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	shipment.Items = []form.Item{{ProductName: "Tea", HSN: "09024020", Qty: "2", UnitPrice: "100.25", IGST: "0"}}

	suite.Require().NoError(controller.SubmitConsignor(d, form.Consignor{PickupAddress: "Warehouse 1"}))
	suite.Require().NoError(controller.SubmitConsignee(d, form.Consignee{Shipping: contact, SameAsBilling: true}))
	suite.Require().NoError(controller.SubmitShipment(d, shipment))
	d.SetQuotes([]draft.ShippingOption{
		{ID: "dhl", Name: "DHL Express", Price: decimal.NewFromInt(15966), TransitTime: "4 - 7 Days", HasDuties: true},
	})
	return d
}

func (suite *DraftRepositoryIntegrationTestSuite) TestAdd_RoundTripsEveryField() {
	ctx := context.Background()
	d := suite.shippingDraft()

	suite.Require().NoError(suite.repository.Add(ctx, d))
	suite.Equal(int64(1), d.Version())

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Equal(d.ID(), got.ID())
	suite.Equal(draft.SectionShipping, got.ActiveSection())
	suite.Equal(3, got.ActiveStep())
	suite.Equal(3, got.Step())
	suite.Equal(int64(1), got.Version())
	suite.Equal("Warehouse 1", got.Data().Consignor.PickupAddress)
	suite.Equal(d.Data().Consignee.Billing, got.Data().Consignee.Billing)
	suite.True(got.Data().Consignee.SameAsBilling)
	suite.Equal("INV42", got.Data().Shipment.InvoiceNo)
	suite.True(got.Data().Shipment.InvoiceDate.Equal(d.Data().Shipment.InvoiceDate))
	suite.Equal(d.Items(), got.Items())

	suite.Require().Len(got.Quotes(), 1)
	suite.True(got.Quotes()[0].Price.Equal(decimal.NewFromInt(15966)))
	suite.True(got.Quotes()[0].HasDuties)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", d.ID().String(), d)
}

func (suite *DraftRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	d := suite.shippingDraft()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	d.AddItem()
	suite.Require().NoError(suite.repository.Update(ctx, d))
	suite.Equal(int64(2), d.Version())

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(2), got.Version())
	suite.Len(got.Items(), 2)
}

func (suite *DraftRepositoryIntegrationTestSuite) TestUpdate_ResetDraftPersistsZeroValues() {
	ctx := context.Background()
	d := suite.shippingDraft()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	d.Reset()
	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(draft.SectionConsignor, got.ActiveSection())
	suite.Equal(0, got.ActiveStep())
	suite.Empty(got.Quotes())
	suite.Empty(got.Data().Consignor.PickupAddress)
}

func (suite *DraftRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	d := suite.shippingDraft()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	first, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	first.AddItem()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	second.ClearShippingOption()
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Len(got.Items(), 2)
	suite.Len(got.Quotes(), 1)
}

func (suite *DraftRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	d, err := draft.NewDraft(kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), d)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DraftRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DraftRepositoryIntegrationTestSuite) TestDeleteUntouchedSince() {
	ctx := context.Background()

	stale := suite.shippingDraft()
	fresh := suite.shippingDraft()
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.db.Exec(
		"UPDATE drafts SET updated_at = ? WHERE id = ?", time.Now().Add(-48*time.Hour), stale.ID().Bytes(),
	).Error)

	deleted, err := suite.repository.DeleteUntouchedSince(ctx, time.Now().Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
	_, err = suite.repository.Get(ctx, stale.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
}

func TestDraftRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DraftRepositoryIntegrationTestSuite))
}
