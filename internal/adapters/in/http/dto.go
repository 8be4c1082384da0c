package http

import (
	"time"

	"orderwizard/internal/core/application/usecases/queries"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed request.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type CodeLabel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Consignor struct {
	PickupAddress string `json:"pickupAddress"`
}

type Contact struct {
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Mobile          string    `json:"mobile"`
	AlternateMobile string    `json:"alternateMobile"`
	Email           string    `json:"email"`
	Country         CodeLabel `json:"country"`
	Address1        string    `json:"address1"`
	Landmark        string    `json:"landmark"`
	Address2        string    `json:"address2"`
	Pincode         string    `json:"pincode"`
	City            string    `json:"city"`
	State           string    `json:"state"`
}

type Consignee struct {
	Shipping      Contact `json:"shipping"`
	SameAsBilling bool    `json:"sameAsBilling"`
	Billing       Contact `json:"billing"`
}

type Item struct {
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	HSN         string `json:"hsn"`
	Qty         string `json:"qty"`
	UnitPrice   string `json:"unitPrice"`
	IGST        string `json:"igst"`
}

type Shipment struct {
	ShipmentType    string              `json:"shipmentType"`
	ActualWeight    string              `json:"actualWeight"`
	Length          string              `json:"length"`
	Breadth         string              `json:"breadth"`
	Height          string              `json:"height"`
	InvoiceNo       string              `json:"invoiceNo"`
	InvoiceDate     *openapi_types.Date `json:"invoiceDate,omitempty"`
	InvoiceCurrency string              `json:"invoiceCurrency"`
	OrderID         string              `json:"orderId"`
	IOSSNumber      string              `json:"iossNumber"`
	Items           []Item              `json:"items"`
}

type ShippingOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	TransitTime   string `json:"transitTime"`
	HasDuties     bool   `json:"hasDuties"`
	IsRecommended bool   `json:"isRecommended"`
}

type ShippingOptionChoice struct {
	OptionID string `json:"optionId"`
}

type FormData struct {
	Consignor      Consignor       `json:"consignor"`
	Consignee      Consignee       `json:"consignee"`
	Shipment       Shipment        `json:"shipment"`
	ShippingOption *ShippingOption `json:"shippingOption,omitempty"`
}

type Summary struct {
	VolumetricWeight string  `json:"volumetricWeight"`
	BilledWeight     string  `json:"billedWeight"`
	Currency         string  `json:"currency"`
	OrderTotal       string  `json:"orderTotal"`
	TaxTotal         string  `json:"taxTotal"`
	Surcharge        string  `json:"surcharge"`
	ShippingTotal    *string `json:"shippingTotal,omitempty"`
}

type SectionState struct {
	Section   string `json:"section"`
	Component string `json:"component"`
	Completed bool   `json:"completed"`
	Open      bool   `json:"open"`
	CanReopen bool   `json:"canReopen"`
	Reopened  bool   `json:"reopened"`
}

type Draft struct {
	ID            openapi_types.UUID `json:"id"`
	Version       int64              `json:"version"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Step          int                `json:"step"`
	ActiveSection string             `json:"activeSection"`
	ActiveStep    int                `json:"activeStep"`
	Data          FormData           `json:"data"`
	Quotes        []ShippingOption   `json:"quotes"`
	Summary       Summary            `json:"summary"`
	Sections      []SectionState     `json:"sections"`
	CanPlaceOrder bool               `json:"canPlaceOrder"`
}

type PlacedOrder struct {
	OrderReference string `json:"orderReference"`
	Draft          Draft  `json:"draft"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type KycCustomer struct {
	ID                   string              `json:"id"`
	FirstName            string              `json:"firstName"`
	LastName             string              `json:"lastName"`
	CompletionDate       *openapi_types.Date `json:"completionDate,omitempty"`
	DoneByEmail          string              `json:"doneByEmail"`
	DoneByPhone          string              `json:"doneByPhone"`
	VerifiedBy           string              `json:"verifiedBy"`
	CustomerType         string              `json:"customerType"`
	KycStatus            string              `json:"kycStatus"`
	CsbStatus            string              `json:"csbStatus"`
	LastVerificationDate *openapi_types.Date `json:"lastVerificationDate,omitempty"`
	Submitted            bool                `json:"submitted"`
	DocumentCount        int                 `json:"documentCount"`
	ApprovedCount        int                 `json:"approvedCount"`
}

type KycDocument struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	FileName       string    `json:"fileName"`
	DocumentNumber string    `json:"documentNumber"`
	LastUpdated    time.Time `json:"lastUpdated"`
	Status         string    `json:"status"`
	Selected       bool      `json:"selected"`
}

// Request mapping.

func (c Consignor) toDomain() form.Consignor {
	return form.Consignor{PickupAddress: c.PickupAddress}
}

func (c Contact) toDomain() form.Contact {
	return form.Contact{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Mobile:          c.Mobile,
		AlternateMobile: c.AlternateMobile,
		Email:           c.Email,
		Country:         kernel.CodeLabel{Code: c.Country.Code, Label: c.Country.Label},
		Address1:        c.Address1,
		Landmark:        c.Landmark,
		Address2:        c.Address2,
		Pincode:         c.Pincode,
		City:            c.City,
		State:           c.State,
	}
}

func (c Consignee) toDomain() form.Consignee {
	return form.Consignee{
		Shipping:      c.Shipping.toDomain(),
		SameAsBilling: c.SameAsBilling,
		Billing:       c.Billing.toDomain(),
	}
}

func (s Shipment) toDomain() form.Shipment {
	items := make([]form.Item, len(s.Items))
	for i, item := range s.Items {
		items[i] = form.Item{
			ProductName: item.ProductName,
			SKU:         item.SKU,
			HSN:         item.HSN,
			Qty:         item.Qty,
			UnitPrice:   item.UnitPrice,
			IGST:        item.IGST,
		}
	}

	var invoiceDate time.Time
	if s.InvoiceDate != nil {
		invoiceDate = s.InvoiceDate.Time
	}

	return form.Shipment{
		ShipmentType:    s.ShipmentType,
		ActualWeight:    s.ActualWeight,
		Length:          s.Length,
		Breadth:         s.Breadth,
		Height:          s.Height,
		InvoiceNo:       s.InvoiceNo,
		InvoiceDate:     invoiceDate,
		InvoiceCurrency: s.InvoiceCurrency,
		OrderID:         s.OrderID,
		IOSSNumber:      s.IOSSNumber,
		Items:           items,
	}
}

// Response mapping.

func toCodeLabels(values []kernel.CodeLabel) []CodeLabel {
	out := make([]CodeLabel, len(values))
	for i, v := range values {
		out[i] = CodeLabel{Code: v.Code, Label: v.Label}
	}
	return out
}

func toContact(c form.Contact) Contact {
	return Contact{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Mobile:          c.Mobile,
		AlternateMobile: c.AlternateMobile,
		Email:           c.Email,
		Country:         CodeLabel{Code: c.Country.Code, Label: c.Country.Label},
		Address1:        c.Address1,
		Landmark:        c.Landmark,
		Address2:        c.Address2,
		Pincode:         c.Pincode,
		City:            c.City,
		State:           c.State,
	}
}

func toShipment(s form.Shipment) Shipment {
	items := make([]Item, len(s.Items))
	for i, item := range s.Items {
		items[i] = Item{
			ProductName: item.ProductName,
			SKU:         item.SKU,
			HSN:         item.HSN,
			Qty:         item.Qty,
			UnitPrice:   item.UnitPrice,
			IGST:        item.IGST,
		}
	}

	return Shipment{
		ShipmentType:    s.ShipmentType,
		ActualWeight:    s.ActualWeight,
		Length:          s.Length,
		Breadth:         s.Breadth,
		Height:          s.Height,
		InvoiceNo:       s.InvoiceNo,
		InvoiceDate:     toDate(s.InvoiceDate),
		InvoiceCurrency: s.InvoiceCurrency,
		OrderID:         s.OrderID,
		IOSSNumber:      s.IOSSNumber,
		Items:           items,
	}
}

func toShippingOption(o draft.ShippingOption) ShippingOption {
	return ShippingOption{
		ID:            o.ID,
		Name:          o.Name,
		Price:         o.Price.StringFixed(2),
		TransitTime:   o.TransitTime,
		HasDuties:     o.HasDuties,
		IsRecommended: o.IsRecommended,
	}
}

func toDraft(v queries.GetDraftQueryResponse) Draft {
	data := FormData{
		Consignor: Consignor{PickupAddress: v.Data.Consignor.PickupAddress},
		Consignee: Consignee{
			Shipping:      toContact(v.Data.Consignee.Shipping),
			SameAsBilling: v.Data.Consignee.SameAsBilling,
			Billing:       toContact(v.Data.Consignee.Billing),
		},
		Shipment: toShipment(v.Data.Shipment),
	}
	if v.Data.ShippingOption != nil {
		option := toShippingOption(*v.Data.ShippingOption)
		data.ShippingOption = &option
	}

	quotes := make([]ShippingOption, len(v.Quotes))
	for i, q := range v.Quotes {
		quotes[i] = toShippingOption(q)
	}

	summary := Summary{
		VolumetricWeight: v.Summary.VolumetricWeight.String(),
		BilledWeight:     v.Summary.BilledWeight.String(),
		Currency:         v.Summary.OrderTotal.Currency(),
		OrderTotal:       v.Summary.OrderTotal.Amount().StringFixed(2),
		TaxTotal:         v.Summary.TaxTotal.Amount().StringFixed(2),
		Surcharge:        v.Surcharge.StringFixed(2),
	}
	if v.Summary.ShippingTotal != nil {
		total := v.Summary.ShippingTotal.StringFixed(2)
		summary.ShippingTotal = &total
	}

	sections := make([]SectionState, len(v.Sections))
	for i, s := range v.Sections {
		sections[i] = SectionState{
			Section:   s.Section.String(),
			Component: s.Component,
			Completed: s.Completed,
			Open:      s.Open,
			CanReopen: s.CanReopen,
			Reopened:  s.Reopened,
		}
	}

	return Draft{
		ID:            v.ID.Bytes(),
		Version:       v.Version,
		UpdatedAt:     v.UpdatedAt,
		Step:          v.Step,
		ActiveSection: v.ActiveSection.String(),
		ActiveStep:    v.ActiveStep,
		Data:          data,
		Quotes:        quotes,
		Summary:       summary,
		Sections:      sections,
		CanPlaceOrder: v.CanPlaceOrder,
	}
}

func toKycCustomer(c queries.KycCustomerResponse) KycCustomer {
	out := KycCustomer{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		CompletionDate: toDate(c.CompletionDate),
		DoneByEmail:    c.DoneByEmail,
		DoneByPhone:    c.DoneByPhone,
		VerifiedBy:     c.VerifiedBy,
		CustomerType:   string(c.CustomerType),
		KycStatus:      string(c.KycStatus),
		CsbStatus:      string(c.CsbStatus),
		Submitted:      c.Submitted,
		DocumentCount:  c.DocumentCount,
		ApprovedCount:  c.ApprovedCount,
	}
	if c.LastVerificationDate != nil {
		out.LastVerificationDate = toDate(*c.LastVerificationDate)
	}
	return out
}

func toKycDocument(d queries.KycDocumentResponse) KycDocument {
	return KycDocument{
		ID:             d.ID,
		Name:           d.Name,
		FileName:       d.FileName,
		DocumentNumber: d.Number,
		LastUpdated:    d.LastUpdated,
		Status:         string(d.Status),
		Selected:       d.Selected,
	}
}

func toDate(t time.Time) *openapi_types.Date {
	if t.IsZero() {
		return nil
	}
	return &openapi_types.Date{Time: t}
}
