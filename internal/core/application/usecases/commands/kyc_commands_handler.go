package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/kyc"
)

// KycReviewCommandHandler applies a reviewer's actions to a customer's KYC
// record. Every action loads the customer, changes it and saves it in one
// transaction.
type KycReviewCommandHandler struct {
	uowFactory KycUoWFactory
	now        Clock
}

func NewKycReviewCommandHandler(uowFactory KycUoWFactory, now Clock) KycReviewCommandHandler {
	return KycReviewCommandHandler{uowFactory: uowFactory, now: now}
}

func (h *KycReviewCommandHandler) HandleToggleSelection(ctx context.Context, cmd ToggleDocumentSelectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd.CustomerID(), func(c *kyc.Customer) error {
		return c.ToggleDocumentSelection(cmd.DocumentID())
	})
}

func (h *KycReviewCommandHandler) HandleUpdateDocumentStatus(ctx context.Context, cmd UpdateDocumentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd.CustomerID(), func(c *kyc.Customer) error {
		return c.UpdateDocumentStatus(cmd.DocumentID(), cmd.Status(), h.now())
	})
}

// HandleSubmit marks KYC done, verified today, when every document is approved.
func (h *KycReviewCommandHandler) HandleSubmit(ctx context.Context, cmd SubmitKycDocumentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd.CustomerID(), func(c *kyc.Customer) error {
		c.Submit(h.now())
		return nil
	})
}

func (h *KycReviewCommandHandler) HandleUpdateCsbStatus(ctx context.Context, cmd UpdateCsbStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd.CustomerID(), func(c *kyc.Customer) error {
		return c.UpdateCsbStatus(cmd.Status())
	})
}

func (h *KycReviewCommandHandler) change(ctx context.Context, customerID string, change func(c *kyc.Customer) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.KycRepository()
	customer, err := repo.Get(ctx, customerID)
	if err != nil {
		return err
	}

	if err = change(customer); err != nil {
		return err
	}

	if err = repo.Update(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
