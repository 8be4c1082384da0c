package services_test

import (
	"testing"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVolumetricWeight(t *testing.T) {
	tests := []struct {
		l, b, h string
		want    string
	}{
		{"10", "10", "10", "0.2"},
		{"50", "40", "30", "12"},
		{"33", "17", "9", "1.01"},
		{"1", "1", "1", "0"},
		{"120", "120", "120", "345.6"},
	}

	for _, tt := range tests {
		got := services.VolumetricWeight(dec(tt.l), dec(tt.b), dec(tt.h))
		assert.True(t, got.Equal(dec(tt.want)), "%sx%sx%s: got %s want %s", tt.l, tt.b, tt.h, got, tt.want)
	}
}

func TestBilledWeight(t *testing.T) {
	pairs := [][2]string{{"5", "0.2"}, {"0.5", "12"}, {"3", "3"}, {"0.01", "0"}}

	for _, p := range pairs {
		actual, volumetric := dec(p[0]), dec(p[1])
		billed := services.BilledWeight(actual, volumetric)

		assert.True(t, billed.GreaterThanOrEqual(actual))
		assert.True(t, billed.GreaterThanOrEqual(volumetric))
		assert.True(t, billed.Equal(actual) || billed.Equal(volumetric))
	}
}

func TestOrderTotal(t *testing.T) {
	items := []form.Item{
		{Qty: "2", UnitPrice: "100.25"},
		{Qty: "1", UnitPrice: "50"},
	}

	total, err := services.OrderTotal(items, "INR")
	require.NoError(t, err)
	assert.True(t, total.Amount().Equal(dec("250.50")))
	assert.Equal(t, "INR 250.50", total.String())

	_, err = services.OrderTotal(items, "rupees")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderTotal_IgnoresIncompleteLines(t *testing.T) {
	items := []form.Item{{Qty: "3", UnitPrice: "10"}, {Qty: "", UnitPrice: "99"}, {Qty: "x", UnitPrice: "1"}}

	total, err := services.OrderTotal(items, "USD")
	require.NoError(t, err)
	assert.True(t, total.Amount().Equal(dec("30")))
}

func TestTaxTotal(t *testing.T) {
	items := []form.Item{
		{Qty: "2", UnitPrice: "100", IGST: "18"},
		{Qty: "1", UnitPrice: "50", IGST: "0"},
		{Qty: "1", UnitPrice: "10.10", IGST: "5"},
	}

	total, err := services.TaxTotal(items, "INR")
	require.NoError(t, err)
	assert.True(t, total.Amount().Equal(dec("36.51")), total.String())
	assert.True(t, services.LineTax(items[0]).Equal(dec("36")))
}

func TestShippingCostTotal(t *testing.T) {
	got := services.ShippingCostTotal(dec("7722"), services.DefaultShippingSurcharge)
	assert.True(t, got.Equal(dec("10487.16")))
}

func TestNewCalculator(t *testing.T) {
	_, err := services.NewCalculator(dec("-1"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	calc, err := services.NewCalculator(dec("100"))
	require.NoError(t, err)
	assert.True(t, calc.ShippingTotal(draft.ShippingOption{Price: dec("900")}).Equal(dec("1000")))
}

func TestCalculator_Summarize(t *testing.T) {
	calc, err := services.NewCalculator(services.DefaultShippingSurcharge)
	require.NoError(t, err)

	d, err := draft.NewDraft(kernel.NewUUID())
	require.NoError(t, err)

	summary, err := calc.Summarize(d)
	require.NoError(t, err)
	assert.True(t, summary.VolumetricWeight.IsZero())
	assert.True(t, summary.OrderTotal.Amount().IsZero())
	assert.Equal(t, "INR", summary.OrderTotal.Currency())
	assert.Nil(t, summary.ShippingTotal)

	shipment := d.Data().Shipment
	shipment.ActualWeight = "0.5"
	shipment.Length, shipment.Breadth, shipment.Height = "50", "40", "30"
	shipment.InvoiceCurrency = "us"
	shipment.Items = []form.Item{{Qty: "2", UnitPrice: "100.25", IGST: "0"}, {Qty: "1", UnitPrice: "50", IGST: "0"}}
	option := draft.ShippingOption{ID: "dhl", Price: dec("15966")}
	d.SetFormData(draft.FormPatch{Shipment: &shipment, ShippingOption: &option})

	summary, err = calc.Summarize(d)
	require.NoError(t, err)
	assert.True(t, summary.VolumetricWeight.Equal(dec("12")))
	assert.True(t, summary.BilledWeight.Equal(dec("12")))
	assert.True(t, summary.OrderTotal.Amount().Equal(dec("250.50")))
	assert.Equal(t, "INR", summary.OrderTotal.Currency(), "falls back while the currency is incomplete")
	require.NotNil(t, summary.ShippingTotal)
	assert.True(t, summary.ShippingTotal.Equal(dec("18731.16")))
}
