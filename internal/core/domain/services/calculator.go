package services

import (
	"errors"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// VolumetricDivisor converts cubic centimetres into chargeable kilograms.
	VolumetricDivisor = decimal.NewFromInt(5000)

	// DefaultShippingSurcharge is the flat GST and handling charge added to
	// every carrier price.
	DefaultShippingSurcharge = decimal.RequireFromString("2765.16")

	hundred = decimal.NewFromInt(100)
)

// VolumetricWeight is l*b*h/5000 rounded to two places.
func VolumetricWeight(length, breadth, height decimal.Decimal) decimal.Decimal {
	return length.Mul(breadth).Mul(height).Div(VolumetricDivisor).Round(2)
}

// BilledWeight is the greater of the dead weight and the volumetric weight.
func BilledWeight(actual, volumetric decimal.Decimal) decimal.Decimal {
	return decimal.Max(actual, volumetric)
}

// LineTotal is qty*unitPrice, unrounded.
func LineTotal(qty, unitPrice decimal.Decimal) decimal.Decimal {
	return qty.Mul(unitPrice)
}

// LineTax is the IGST due on one line: lineTotal*igst/100.
func LineTax(item form.Item) decimal.Decimal {
	return itemTotal(item).Mul(form.ParseDecimal(item.IGST)).Div(hundred)
}

// OrderTotal sums every line in the invoice currency. Lines that are still
// blank or malformed count as zero.
func OrderTotal(items []form.Item, currency string) (kernel.Money, error) {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(itemTotal(item))
	}
	return kernel.NewMoney(sum, currency)
}

// TaxTotal sums LineTax over every line.
func TaxTotal(items []form.Item, currency string) (kernel.Money, error) {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineTax(item))
	}
	return kernel.NewMoney(sum.Round(2), currency)
}

// ShippingCostTotal is the carrier price plus the surcharge.
func ShippingCostTotal(price, surcharge decimal.Decimal) decimal.Decimal {
	return price.Add(surcharge)
}

func itemTotal(item form.Item) decimal.Decimal {
	return LineTotal(form.ParseDecimal(item.Qty), form.ParseDecimal(item.UnitPrice))
}

// Summary holds every figure derived from a draft.
type Summary struct {
	VolumetricWeight decimal.Decimal
	BilledWeight     decimal.Decimal
	OrderTotal       kernel.Money
	TaxTotal         kernel.Money
	// ShippingTotal is nil until a shipping option is chosen.
	ShippingTotal *decimal.Decimal
}

// Calculator derives figures from drafts using a fixed shipping surcharge.
type Calculator struct {
	surcharge decimal.Decimal
}

// NewCalculator rejects a negative surcharge.
func NewCalculator(surcharge decimal.Decimal) (Calculator, error) {
	if surcharge.IsNegative() {
		return Calculator{}, errs.NewValueIsOutOfRangeError("shipping surcharge", surcharge, 0, "∞")
	}
	return Calculator{surcharge: surcharge}, nil
}

func (c Calculator) Surcharge() decimal.Decimal {
	return c.surcharge
}

// ShippingTotal is what the seller pays for option.
func (c Calculator) ShippingTotal(option draft.ShippingOption) decimal.Decimal {
	return ShippingCostTotal(option.Price, c.surcharge)
}

// Summarize recomputes every derived figure from the draft's current data.
// An invoice currency that is not yet valid falls back to the default one so
// totals can still be shown while the seller types.
func (c Calculator) Summarize(d *draft.Draft) (Summary, error) {
	if err := d.Validate(); err != nil {
		return Summary{}, err
	}

	data := d.Data()
	shipment := data.Shipment

	volumetric := VolumetricWeight(
		form.ParseDecimal(shipment.Length),
		form.ParseDecimal(shipment.Breadth),
		form.ParseDecimal(shipment.Height),
	)

	currency := shipment.InvoiceCurrency
	if _, err := kernel.NewMoney(decimal.Zero, currency); err != nil {
		currency = form.DefaultCurrency
	}

	orderTotal, orderErr := OrderTotal(shipment.Items, currency)
	taxTotal, taxErr := TaxTotal(shipment.Items, currency)
	if err := errors.Join(orderErr, taxErr); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		VolumetricWeight: volumetric,
		BilledWeight:     BilledWeight(form.ParseDecimal(shipment.ActualWeight), volumetric),
		OrderTotal:       orderTotal,
		TaxTotal:         taxTotal,
	}
	if data.ShippingOption != nil {
		total := c.ShippingTotal(*data.ShippingOption)
		summary.ShippingTotal = &total
	}
	return summary, nil
}
