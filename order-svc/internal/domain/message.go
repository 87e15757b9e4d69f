package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type           string          `json:"type"`
	OrderID        string          `json:"order_id"`
	Status         Status          `json:"status"`
	PreviousStatus Status          `json:"previous_status,omitempty"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	Items          []EventItem     `json:"items,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}
