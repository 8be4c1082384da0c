package ordersapi

import (
	"context"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/ports"

	"github.com/shopspring/decimal"
)

// StaticRates quotes a fixed table regardless of the package. It stands in
// for the rates API when none is configured.
type StaticRates struct{}

func (StaticRates) Quote(ctx context.Context, _ ports.RateRequest) ([]draft.ShippingOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []draft.ShippingOption{
		{
			ID:            "shipglobal",
			Name:          "ShipGlobal Direct",
			Price:         decimal.NewFromInt(7722),
			TransitTime:   "7 - 10 Days",
			IsRecommended: true,
		},
		{
			ID:          "ups-promotional",
			Name:        "UPS Promotional",
			Price:       decimal.NewFromInt(15362),
			TransitTime: "4 - 7 Days",
			HasDuties:   true,
		},
		{
			ID:          "dhl",
			Name:        "DHL Express",
			Price:       decimal.NewFromInt(15966),
			TransitTime: "4 - 7 Days",
			HasDuties:   true,
		},
		{
			ID:          "ups",
			Name:        "UPS",
			Price:       decimal.NewFromInt(19176),
			TransitTime: "4 - 7 Days",
			HasDuties:   true,
		},
	}, nil
}
