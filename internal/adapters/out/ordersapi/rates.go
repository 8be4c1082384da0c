package ordersapi

import (
	"context"
	"net/http"

	"orderwizard/internal/adapters/out/httpclient"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/ports"
)

// RateProvider implements ports.RateProvider with get-shipper-rates.
type RateProvider struct {
	client *httpclient.Client
}

func NewRateProvider(client *httpclient.Client) *RateProvider {
	return &RateProvider{client: client}
}

func (p *RateProvider) Quote(ctx context.Context, req ports.RateRequest) ([]draft.ShippingOption, error) {
	var rates []rateDTO
	if err := p.client.Do(ctx, http.MethodPost, "/get-shipper-rates", newRateRequest(req), &rates); err != nil {
		return nil, err
	}

	options := make([]draft.ShippingOption, 0, len(rates))
	for _, r := range rates {
		if r.ProviderCode == "" {
			continue
		}
		options = append(options, r.toDomain())
	}
	return options, nil
}
