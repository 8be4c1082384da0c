package form

import (
	"time"

	"orderwizard/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Courier Shipping Bill regimes an export shipment can be filed under.
const (
	ShipmentTypeCSBIV = "CSB IV"
	ShipmentTypeCSBV  = "CSB V"

	DefaultCurrency = "INR"
	DefaultIGST     = "0"
)

// Item is one invoice line as typed by the user.
type Item struct {
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	HSN         string `json:"hsn"`
	Qty         string `json:"qty"`
	UnitPrice   string `json:"unitPrice"`
	IGST        string `json:"igst"`
}

// NewItem returns the blank line appended by "add item".
func NewItem() Item {
	return Item{IGST: DefaultIGST}
}

// Shipment is the package, invoice and items section.
type Shipment struct {
	ShipmentType    string    `json:"shipmentType"`
	ActualWeight    string    `json:"actualWeight"`
	Length          string    `json:"length"`
	Breadth         string    `json:"breadth"`
	Height          string    `json:"height"`
	InvoiceNo       string    `json:"invoiceNo"`
	InvoiceDate     time.Time `json:"invoiceDate"`
	InvoiceCurrency string    `json:"invoiceCurrency"`
	OrderID         string    `json:"orderId"`
	IOSSNumber      string    `json:"iossNumber"`
	Items           []Item    `json:"items"`
}

// NewShipment returns the section defaults: CSB IV, INR and one blank line.
func NewShipment() Shipment {
	return Shipment{
		ShipmentType:    ShipmentTypeCSBIV,
		InvoiceCurrency: DefaultCurrency,
		Items:           []Item{NewItem()},
	}
}

// IsCSBV reports whether the shipment is filed under the CSB V regime.
func (s Shipment) IsCSBV() bool {
	return s.ShipmentType == ShipmentTypeCSBV
}

func dimensionField(name, label string) Field {
	return Field{
		Name:     name,
		Kind:     KindDecimal,
		Required: label + " is required",
		Format:   label + " must be a valid number",
		Max:      label + " must be not more than " + kernel.DimensionMax.String(),
		Min:      label + " must be atleast " + kernel.DimensionMin.String() + " cm",
		Lower:    ptr(kernel.DimensionMin),
		Upper:    ptr(kernel.DimensionMax),
	}
}

func packageFields() []Field {
	return []Field{
		{
			Name:    "shipmentType",
			Kind:    KindEnum,
			Format:  "Shipment type must be CSB IV or CSB V",
			Options: []string{ShipmentTypeCSBIV, ShipmentTypeCSBV},
		},
		{
			Name:      "actualWeight",
			Kind:      KindDecimal,
			Required:  "Actual weight is required",
			Format:    "Weight must be a valid number",
			Max:       "Weight must be not more than " + kernel.WeightMax.String(),
			Min:       "Weight must be atleast 0.01 KG",
			Lower:     ptr(decimal.Zero),
			Upper:     ptr(kernel.WeightMax),
			LowerOpen: true,
		},
		dimensionField("length", "Length"),
		dimensionField("breadth", "Breadth"),
		dimensionField("height", "Height"),
		{
			Name:     "invoiceNo",
			Kind:     KindPattern,
			Required: "Invoice number is required",
			Format:   "Invoice number must be alphanumeric",
			Pattern:  alnumPattern,
		},
		{Name: "invoiceDate", Kind: KindDate, Required: "Invoice date is required"},
		{
			Name:     "invoiceCurrency",
			Kind:     KindPattern,
			Required: "Invoice currency is required",
			Format:   "Invoice currency must be a 3-letter currency code",
			Pattern:  currencyPattern,
		},
		{Name: "iossNumber", Kind: KindOptionalText},
	}
}

func (s Shipment) packageValues() []Value {
	return []Value{
		Text(s.ShipmentType),
		Text(s.ActualWeight),
		Text(s.Length),
		Text(s.Breadth),
		Text(s.Height),
		Text(s.InvoiceNo),
		Date(s.InvoiceDate),
		Text(s.InvoiceCurrency),
		Text(s.IOSSNumber),
	}
}

func itemFields(hsn Field) []Field {
	return []Field{
		{Name: "productName", Kind: KindText, Required: "Product name is required"},
		{Name: "sku", Kind: KindOptionalText},
		hsn,
		{
			Name:      "qty",
			Kind:      KindDecimal,
			Required:  "Quantity is required",
			Format:    "Quantity must be a valid number",
			Min:       "Quantity must not be zero",
			Lower:     ptr(decimal.Zero),
			LowerOpen: true,
		},
		{
			Name:     "unitPrice",
			Kind:     KindMoney,
			Required: "Unit price is required",
			Format:   "Unit price must be a valid number with up to two decimal places",
			Min:      "Unit price must not be zero",
		},
		{
			Name:     "igst",
			Kind:     KindPercent,
			Required: "IGST is required",
			Format:   "IGST must be a valid percentage or number with up to two decimal places",
		},
	}
}

func (i Item) values() []Value {
	return []Value{
		Text(i.ProductName),
		Text(i.SKU),
		Text(i.HSN),
		Text(i.Qty),
		Text(i.UnitPrice),
		Text(i.IGST),
	}
}
