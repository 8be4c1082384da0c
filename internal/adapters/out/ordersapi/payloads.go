package ordersapi

import (
	"encoding/json"
	"strings"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/ports"

	"github.com/shopspring/decimal"
)

const invoiceDateLayout = "2006-01-02"

type orderItem struct {
	Name      string      `json:"vendor_order_item_name"`
	SKU       string      `json:"vendor_order_item_sku"`
	Quantity  json.Number `json:"vendor_order_item_quantity"`
	UnitPrice json.Number `json:"vendor_order_item_unit_price"`
	HSN       string      `json:"vendor_order_item_hsn"`
	TaxRate   string      `json:"vendor_order_item_tax_rate"`
}

// invoiceRequest is the body of validate-order-invoice.
type invoiceRequest struct {
	CSBV           string      `json:"csbv"`
	CurrencyCode   string      `json:"currency_code"`
	PackageWeight  string      `json:"package_weight"`
	PackageHeight  string      `json:"package_height"`
	PackageLength  string      `json:"package_length"`
	PackageBreadth string      `json:"package_breadth"`
	Items          []orderItem `json:"vendor_order_item"`
}

type address struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Mobile          string `json:"mobile"`
	AlternateMobile string `json:"alternate_mobile,omitempty"`
	Email           string `json:"email"`
	CountryCode     string `json:"country_code"`
	CountryName     string `json:"country_name"`
	Address1        string `json:"address_1"`
	Address2        string `json:"address_2"`
	Landmark        string `json:"landmark,omitempty"`
	Pincode         string `json:"pincode"`
	City            string `json:"city"`
	State           string `json:"state"`
}

// addOrderRequest is the body of add.
type addOrderRequest struct {
	invoiceRequest

	PickupAddress  string  `json:"pickup_address"`
	Shipping       address `json:"customer_shipping"`
	Billing        address `json:"customer_billing"`
	SameAsBilling  bool    `json:"billing_same_as_shipping"`
	InvoiceNo      string  `json:"invoice_no"`
	InvoiceDate    string  `json:"invoice_date"`
	VendorOrderID  string  `json:"vendor_order_id,omitempty"`
	IOSSNumber     string  `json:"ioss_number,omitempty"`
	ShippingOption string  `json:"shipper_provider_code"`
}

type addOrderResponse struct {
	Data struct {
		OrderID string `json:"order_id"`
	} `json:"data"`
}

// rateRequest is the body of get-shipper-rates.
type rateRequest struct {
	CSBV            string      `json:"csbv"`
	CountryCode     string      `json:"customer_shipping_country_code"`
	Postcode        string      `json:"customer_shipping_postcode"`
	PackageWeight   json.Number `json:"package_weight"`
	BilledWeight    json.Number `json:"package_billed_weight"`
	PackageLength   json.Number `json:"package_length"`
	PackageBreadth  json.Number `json:"package_breadth"`
	PackageHeight   json.Number `json:"package_height"`
	InvoiceValue    json.Number `json:"invoice_value"`
	InvoiceCurrency string      `json:"currency_code"`
}

type rateDTO struct {
	ProviderCode  string          `json:"provider_code"`
	DisplayName   string          `json:"display_name"`
	Rate          decimal.Decimal `json:"rate"`
	TransitTime   string          `json:"transit_time"`
	HasDuties     bool            `json:"has_duties"`
	IsRecommended bool            `json:"is_recommended"`
}

func csbv(shipmentType string) string {
	if shipmentType == form.ShipmentTypeCSBV {
		return "1"
	}
	return "0"
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func newInvoiceRequest(s form.Shipment) invoiceRequest {
	items := make([]orderItem, 0, len(s.Items))
	for _, item := range s.Items {
		taxRate := strings.TrimSpace(item.IGST)
		if taxRate == "" {
			taxRate = form.DefaultIGST
		}
		items = append(items, orderItem{
			Name:      item.ProductName,
			SKU:       item.SKU,
			Quantity:  number(form.ParseDecimal(item.Qty)),
			UnitPrice: number(form.ParseDecimal(item.UnitPrice)),
			HSN:       item.HSN,
			TaxRate:   taxRate,
		})
	}

	return invoiceRequest{
		CSBV:           csbv(s.ShipmentType),
		CurrencyCode:   s.InvoiceCurrency,
		PackageWeight:  s.ActualWeight,
		PackageHeight:  s.Height,
		PackageLength:  s.Length,
		PackageBreadth: s.Breadth,
		Items:          items,
	}
}

func newAddress(c form.Contact) address {
	return address{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Mobile:          c.Mobile,
		AlternateMobile: c.AlternateMobile,
		Email:           c.Email,
		CountryCode:     c.Country.Code,
		CountryName:     c.Country.Label,
		Address1:        c.Address1,
		Address2:        c.Address2,
		Landmark:        c.Landmark,
		Pincode:         c.Pincode,
		City:            c.City,
		State:           c.State,
	}
}

func newAddOrderRequest(data draft.FormData) addOrderRequest {
	consignee := data.Consignee.WithBillingSynced()
	shipment := data.Shipment

	req := addOrderRequest{
		invoiceRequest: newInvoiceRequest(shipment),
		PickupAddress:  data.Consignor.PickupAddress,
		Shipping:       newAddress(consignee.Shipping),
		Billing:        newAddress(consignee.Billing),
		SameAsBilling:  consignee.SameAsBilling,
		InvoiceNo:      shipment.InvoiceNo,
		VendorOrderID:  shipment.OrderID,
		IOSSNumber:     shipment.IOSSNumber,
	}
	if !shipment.InvoiceDate.IsZero() {
		req.InvoiceDate = shipment.InvoiceDate.Format(invoiceDateLayout)
	}
	if data.ShippingOption != nil {
		req.ShippingOption = data.ShippingOption.ID
	}
	return req
}

func newRateRequest(r ports.RateRequest) rateRequest {
	return rateRequest{
		CSBV:            csbv(r.ShipmentType),
		CountryCode:     r.DestinationCountry,
		Postcode:        r.DestinationPincode,
		PackageWeight:   number(r.ActualWeight.Kilograms()),
		BilledWeight:    number(r.BilledWeight),
		PackageLength:   number(r.Dimensions.Length()),
		PackageBreadth:  number(r.Dimensions.Breadth()),
		PackageHeight:   number(r.Dimensions.Height()),
		InvoiceValue:    number(r.InvoiceValue.Amount()),
		InvoiceCurrency: r.InvoiceValue.Currency(),
	}
}

func (r rateDTO) toDomain() draft.ShippingOption {
	return draft.ShippingOption{
		ID:            r.ProviderCode,
		Name:          r.DisplayName,
		Price:         r.Rate,
		TransitTime:   r.TransitTime,
		HasDuties:     r.HasDuties,
		IsRecommended: r.IsRecommended,
	}
}
