// Package postgres provides the GORM-based Unit of Work used by every command
// handler. A unit of work wraps one database transaction and the repositories
// bound to it, and remembers the aggregates saved through them so the domain
// events they raised can be published once the transaction has committed.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.DraftRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // publishes d.Events()
//
// Each UnitOfWork instance is meant for one goroutine and one business
// operation; create a new one per command.
package postgres

import (
	"context"
	"log/slog"

	"orderwizard/internal/adapters/out/postgres/draftrepo"
	"orderwizard/internal/adapters/out/postgres/kycrepo"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// eventSource is an aggregate that raises domain events.
type eventSource interface {
	Events() []draft.DomainEvent
	ClearEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, publisher)
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    slog.Default().With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates saved in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction and then publishes the events raised by the
// aggregates saved in it.
//
// The database is the source of truth: once the commit succeeds a failed
// publish is logged and not returned, so the caller does not retry work that
// has already been stored.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// DraftRepository returns a draft repository bound to the current
// transaction, or to the plain connection when none is open.
func (uow *GormUnitOfWork) DraftRepository() ports.DraftRepository {
	return draftrepo.NewGormDraftRepository(uow.conn(), uow)
}

// KycRepository returns a KYC repository bound to the current transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) KycRepository() ports.KycRepository {
	return kycrepo.NewGormKycRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate saved within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	// An aggregate saved twice is tracked twice; its events go out once.
	seen := make(map[any]struct{}, len(tracked))
	for _, t := range tracked {
		source, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[t.Aggregate]; dup {
			continue
		}
		seen[t.Aggregate] = struct{}{}

		events := source.Events()
		if len(events) == 0 {
			continue
		}

		if err := uow.publisher.Publish(ctx, events...); err != nil {
			uow.logger.Error("failed to publish domain events",
				"aggregate_id", t.ID,
				"events", len(events),
				"error", err,
			)
		}
		source.ClearEvents()
	}
}
