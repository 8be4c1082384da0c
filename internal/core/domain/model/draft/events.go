package draft

import (
	"time"

	"orderwizard/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DomainEvent is something that happened to a draft and that other systems
// may want to hear about once the change is committed.
type DomainEvent interface {
	EventName() string
	AggregateID() kernel.UUID
}

// OrderPlaced is raised when a draft is accepted as an order.
type OrderPlaced struct {
	DraftID        kernel.UUID     `json:"draftId"`
	OrderReference string          `json:"orderReference"`
	Data           FormData        `json:"data"`
	Currency       string          `json:"currency"`
	OrderTotal     decimal.Decimal `json:"orderTotal"`
	ShippingTotal  decimal.Decimal `json:"shippingTotal"`
	PlacedAt       time.Time       `json:"placedAt"`
}

func (e OrderPlaced) EventName() string        { return "order.placed" }
func (e OrderPlaced) AggregateID() kernel.UUID { return e.DraftID }
