package commands_test

import (
	"testing"

	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSelectShippingOptionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionShipping)
	d.SetQuotes(quotes())
	cmd, err := commands.NewSelectShippingOptionCommand(d.ID(), "dhl")
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		metrics.On("SectionSubmitted", draft.SectionShipping, true).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSelectShippingOptionCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, d.ShippingOption())
	assert.Equal(t, "DHL Express", d.ShippingOption().Name)
	assert.Equal(t, draft.SectionPlaceOrder, d.ActiveSection())
	assert.Equal(t, 4, d.Step())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSelectShippingOptionCommandHandler_Handle_NotQuoted(t *testing.T) {
	ctx := t.Context()
	d := draftAt(t, draft.SectionShipping)
	cmd, err := commands.NewSelectShippingOptionCommand(d.ID(), "fedex")
	require.NoError(t, err)

	repo := new(MockDraftRepository)
	factory, uow := draftUoW(repo)
	metrics := new(MockWizardMetrics)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSelectShippingOptionCommandHandler(factory, controller(), metrics)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrShippingOptionNotQuoted)
	assert.Nil(t, d.ShippingOption())
	assert.Equal(t, draft.SectionShipping, d.ActiveSection())
	repo.AssertNotCalled(t, "Update", ctx, d)
}

func TestNewSelectShippingOptionCommand_EmptyOption(t *testing.T) {
	d := draftAt(t, draft.SectionShipping)
	_, err := commands.NewSelectShippingOptionCommand(d.ID(), " ")
	require.Error(t, err)
}
