package draft

import "github.com/shopspring/decimal"

// ShippingOption is a carrier quote for the draft's package.
type ShippingOption struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	TransitTime   string          `json:"transitTime"`
	HasDuties     bool            `json:"hasDuties,omitempty"`
	IsRecommended bool            `json:"isRecommended,omitempty"`
}

// FindOption returns the quote with id, if any.
func FindOption(options []ShippingOption, id string) (ShippingOption, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return ShippingOption{}, false
}
