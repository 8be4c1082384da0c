package draft

import (
	"slices"

	"orderwizard/internal/core/domain/model/form"
)

// FormData is the union of every wizard section's input.
type FormData struct {
	Consignor      form.Consignor  `json:"consignor"`
	Consignee      form.Consignee  `json:"consignee"`
	Shipment       form.Shipment   `json:"shipment"`
	ShippingOption *ShippingOption `json:"shippingOption,omitempty"`
}

// DefaultFormData is what a fresh wizard shows.
func DefaultFormData() FormData {
	return FormData{Shipment: form.NewShipment()}
}

// Clone copies the item list and the chosen option so the copy can be changed
// without touching the original.
func (d FormData) Clone() FormData {
	d.Shipment.Items = slices.Clone(d.Shipment.Items)
	if d.ShippingOption != nil {
		option := *d.ShippingOption
		d.ShippingOption = &option
	}
	return d
}

// FormPatch replaces whole sections of FormData. Nil members are left alone.
type FormPatch struct {
	Consignor      *form.Consignor
	Consignee      *form.Consignee
	Shipment       *form.Shipment
	ShippingOption *ShippingOption
}

func (d FormData) apply(p FormPatch) FormData {
	if p.Consignor != nil {
		d.Consignor = *p.Consignor
	}
	if p.Consignee != nil {
		d.Consignee = *p.Consignee
	}
	if p.Shipment != nil {
		d.Shipment = *p.Shipment
	}
	if p.ShippingOption != nil {
		d.ShippingOption = p.ShippingOption
	}
	return d.Clone()
}
