package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

// OrderEvent mirrors the payload order-svc writes to the order events topic.
type OrderEvent struct {
	Type           string          `json:"type"`
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	PaymentMethod  string          `json:"payment_method"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	Items          []EventItem     `json:"items,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// Day is the UTC calendar day the event counts towards.
func (e OrderEvent) Day() time.Time {
	if e.Timestamp.IsZero() {
		return time.Now().UTC()
	}
	return e.Timestamp.UTC()
}
