package commands

import (
	"context"
	"errors"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/ports"
	"orderwizard/internal/pkg/errs"
)

// changeDraft loads a draft, applies change and saves it, all in one
// transaction. Nothing is saved when change fails.
func changeDraft(
	ctx context.Context,
	uowFactory DraftUoWFactory,
	id kernel.UUID,
	change func(d *draft.Draft) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DraftRepository()
	d, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = change(d); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recordSubmission reports the outcome of a section submission to metrics.
// Failures caused by the seller's input or by an external service count as
// rejected; anything else (a missing draft, a database error) is not counted.
func recordSubmission(metrics ports.WizardMetrics, section draft.Section, err error) error {
	switch {
	case err == nil:
		metrics.SectionSubmitted(section, true)
	case errors.Is(err, errs.ErrValidationFailed),
		errors.Is(err, ports.ErrServiceRejected),
		errors.Is(err, ports.ErrServiceUnavailable):
		metrics.SectionSubmitted(section, false)
	}
	return err
}
