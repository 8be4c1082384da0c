package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "orderwizard/internal/adapters/out/postgres"
	"orderwizard/internal/adapters/out/postgres/draftrepo"
	"orderwizard/internal/adapters/out/postgres/kycrepo"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...draft.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&draftrepo.DraftDTO{}, &kycrepo.CustomerDTO{}, &kycrepo.DocumentDTO{})
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drafts, kyc_documents, kyc_customers").Error
	suite.Require().NoError(err)

	suite.publisher = new(MockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// placedDraft stores a draft and returns it with an OrderPlaced event pending.
func (suite *UnitOfWorkIntegrationTestSuite) placedDraft(ctx context.Context) *draft.Draft {
	d, err := draft.NewDraft(kernel.NewUUID())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.DraftRepository().Add(ctx, d))

	d.SetQuotes([]draft.ShippingOption{{ID: "ups", Name: "UPS", Price: decimal.NewFromInt(19176)}})
	d.SetFormData(draft.FormPatch{ShippingOption: &draft.ShippingOption{ID: "ups", Name: "UPS", Price: decimal.NewFromInt(19176)}})
	total, err := kernel.NewMoney(decimal.NewFromInt(100), "INR")
	suite.Require().NoError(err)
	suite.Require().NoError(d.MarkPlaced("SG-1", total, decimal.NewFromInt(21941), time.Now()))
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.DraftRepository())
	suite.NotNil(uow1.KycRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesEvents() {
	ctx := context.Background()
	d := suite.placedDraft(ctx)

	suite.publisher.On("Publish", ctx, mock.MatchedBy(func(events []draft.DomainEvent) bool {
		if len(events) != 1 {
			return false
		}
		placed, ok := events[0].(draft.OrderPlaced)
		return ok && placed.OrderReference == "SG-1" && placed.DraftID == d.ID()
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DraftRepository().Update(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(d.Events())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChangesAndEvents() {
	ctx := context.Background()
	d := suite.placedDraft(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DraftRepository().Update(ctx, d))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
	suite.Len(d.Events(), 1)

	stored, err := suite.factory.Create().DraftRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), stored.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	d := suite.placedDraft(ctx)

	suite.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DraftRepository().Update(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().DraftRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(draft.SectionConsignor, stored.ActiveSection())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_KycChangesAreAtomic() {
	ctx := context.Background()

	document, err := kyc.NewDocument(1, "Aadhar Card", "Aadhaar.pdf", "", time.Now())
	suite.Require().NoError(err)
	customer, err := kyc.RestoreCustomer("566", kyc.Profile{FirstName: "Ravi", Type: kyc.Individual},
		kyc.KycPending, kyc.CsbPending, nil, false, []*kyc.Document{document})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.KycRepository().Add(ctx, customer))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().KycRepository().Get(ctx, "566")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
