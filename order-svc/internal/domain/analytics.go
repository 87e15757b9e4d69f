package domain

import "github.com/shopspring/decimal"

type DailySummary struct {
	Date     string           `json:"date"`
	Orders   int64            `json:"orders"`
	Revenue  decimal.Decimal  `json:"revenue"`
	ByStatus map[string]int64 `json:"by_status"`
	TopItems []ItemCount      `json:"top_items"`
}

type ItemCount struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   float64 `json:"quantity"`
}
