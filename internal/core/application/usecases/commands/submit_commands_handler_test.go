package commands_test

import (
	"errors"
	"testing"

	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
	"orderwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitConsignorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionConsignor)
	cmd, err := commands.NewSubmitConsignorCommand(d.ID(), form.Consignor{PickupAddress: "Warehouse 1"})
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionConsignor, true).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitConsignorCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, draft.SectionConsignee, d.ActiveSection())
	assert.Equal(t, 1, d.ActiveStep())
	assert.Equal(t, "Warehouse 1", d.Data().Consignor.PickupAddress)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestSubmitConsignorCommandHandler_Handle_InvalidSectionNeverAdvances(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionConsignor)
	cmd, err := commands.NewSubmitConsignorCommand(d.ID(), form.Consignor{})
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionConsignor, false).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitConsignorCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	v, ok := errs.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Please select a pickup address", v.Fields["pickupAddress"])
	assert.Equal(t, draft.SectionConsignor, d.ActiveSection())
	assert.Equal(t, 0, d.ActiveStep())
	repo.AssertNotCalled(t, "Update", ctx, d)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSubmitConsignorCommandHandler_Handle_DraftNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewSubmitConsignorCommand(id, form.Consignor{PickupAddress: "Warehouse 1"})
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("draft", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitConsignorCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	metrics.AssertNotCalled(t, "SectionSubmitted", mock.Anything, mock.Anything)
}

func TestSubmitConsigneeCommandHandler_Handle_SyncsBilling(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionConsignee)
	cmd, err := commands.NewSubmitConsigneeCommand(d.ID(), form.Consignee{Shipping: contact(), SameAsBilling: true})
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionConsignee, true).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitConsigneeCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, contact(), d.Data().Consignee.Billing)
	assert.Equal(t, draft.SectionShipment, d.ActiveSection())
	assert.Equal(t, 2, d.Step())
}

func TestSubmitConsigneeCommandHandler_Handle_WrongSection(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionConsignor)
	cmd, err := commands.NewSubmitConsigneeCommand(d.ID(), form.Consignee{Shipping: contact(), SameAsBilling: true})
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitConsigneeCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrSectionNotActive)
	assert.Equal(t, draft.SectionConsignor, d.ActiveSection())
	metrics.AssertNotCalled(t, "SectionSubmitted", mock.Anything, mock.Anything)
}

func TestSubmitShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionShipment)
	cmd, err := commands.NewSubmitShipmentCommand(d.ID(), shipment())
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)
	gateway := new(MockOrderGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		gateway.On("ValidateInvoice", ctx, mock.MatchedBy(func(data draft.FormData) bool {
			return data.Shipment.InvoiceNo == "INV42" && data.Consignee.Shipping.Pincode == "10001"
		})).Return(nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionShipment, true).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitShipmentCommandHandler(factory, controller(), gateway, metrics)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, draft.SectionShipping, d.ActiveSection())
	assert.Equal(t, 3, d.Step())
	gateway.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestSubmitShipmentCommandHandler_Handle_InvoiceRejected(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionShipment)
	cmd, err := commands.NewSubmitShipmentCommand(d.ID(), shipment())
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)
	gateway := new(MockOrderGateway)

	rejection := &ports.ServiceError{Service: "orders", Status: 400, Message: "Invalid HSN code", Rejected: true}
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		gateway.On("ValidateInvoice", ctx, mock.Anything).Return(rejection).Once(),
		metrics.On("SectionSubmitted", draft.SectionShipment, false).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitShipmentCommandHandler(factory, controller(), gateway, metrics)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrServiceRejected)
	var serviceErr *ports.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "Invalid HSN code", serviceErr.Message)
	assert.Equal(t, draft.SectionShipment, d.ActiveSection())
	repo.AssertNotCalled(t, "Update", ctx, d)
}

func TestSubmitShipmentCommandHandler_Handle_InvalidShipmentSkipsGateway(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionShipment)
	bad := shipment()
	bad.Length = "500"
	cmd, err := commands.NewSubmitShipmentCommand(d.ID(), bad)
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)
	gateway := new(MockOrderGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionShipment, false).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitShipmentCommandHandler(factory, controller(), gateway, metrics)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidationFailed)
	gateway.AssertNotCalled(t, "ValidateInvoice", mock.Anything, mock.Anything)
}

func TestSubmitShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionShipment)
	cmd, err := commands.NewSubmitShipmentCommand(d.ID(), shipment())
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)
	gateway := new(MockOrderGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		gateway.On("ValidateInvoice", ctx, mock.Anything).Return(nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionShipment, true).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitShipmentCommandHandler(factory, controller(), gateway, metrics)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
