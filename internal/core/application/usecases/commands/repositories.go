// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"orderwizard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DraftRepoFactory provides access to the draft repository within a transaction.
	DraftRepoFactory interface {
		DraftRepository() ports.DraftRepository
	}

	// KycRepoFactory provides access to the KYC repository within a transaction.
	KycRepoFactory interface {
		KycRepository() ports.KycRepository
	}

	// DraftUoW manages transactions for draft operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DraftRepository().Get(ctx, id)
	//   // ... change d
	//   err = uow.DraftRepository().Update(ctx, d)
	//
	//   err = uow.Commit(ctx)
	DraftUoW interface {
		TxManager
		DraftRepoFactory
	}

	// DraftUoWFactory creates new draft unit of work instances.
	DraftUoWFactory interface {
		Create() DraftUoW
	}

	// KycUoW manages transactions for KYC review operations.
	KycUoW interface {
		TxManager
		KycRepoFactory
	}

	// KycUoWFactory creates new KYC unit of work instances.
	KycUoWFactory interface {
		Create() KycUoW
	}
)

// Clock tells handlers the current time.
type Clock func() time.Time
