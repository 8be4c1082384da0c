// Package ordersapi talks to the shipping platform's orders API: invoice
// validation, order booking and carrier rates.
package ordersapi

import (
	"context"
	"net/http"
	"strings"

	"orderwizard/internal/adapters/out/httpclient"
	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/ports"
)

// Gateway implements ports.OrderGateway.
type Gateway struct {
	client *httpclient.Client
}

// NewGateway expects client to point at the orders API root, e.g.
// https://api.example.com/api/v1/orders, with the bearer token configured.
func NewGateway(client *httpclient.Client) *Gateway {
	return &Gateway{client: client}
}

// ValidateInvoice returns nil when the orders API accepts the shipment's
// invoice, a rejecting *ports.ServiceError with the API's reason otherwise.
func (g *Gateway) ValidateInvoice(ctx context.Context, data draft.FormData) error {
	return g.client.Do(ctx, http.MethodPost, "/validate-order-invoice", newInvoiceRequest(data.Shipment), nil)
}

// Submit books the order and returns the reference the orders API gave it.
func (g *Gateway) Submit(ctx context.Context, data draft.FormData) (ports.OrderReceipt, error) {
	var resp addOrderResponse
	if err := g.client.Do(ctx, http.MethodPost, "/add", newAddOrderRequest(data), &resp); err != nil {
		return ports.OrderReceipt{}, err
	}

	reference := strings.TrimSpace(resp.Data.OrderID)
	if reference == "" {
		return ports.OrderReceipt{}, &ports.ServiceError{
			Service: g.client.Service(),
			Status:  http.StatusOK,
			Message: "order accepted without a reference",
		}
	}
	return ports.OrderReceipt{Reference: reference}, nil
}
