package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCard            PaymentMethod = "card"
	PaymentCash            PaymentMethod = "cash"
	PaymentPix             PaymentMethod = "pix"
	PaymentPayrollDiscount PaymentMethod = "payroll_discount"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentPix, PaymentPayrollDiscount:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "a_receber"
	PaymentReceived PaymentStatus = "recebido"
)

type PizzaSize string

const (
	SizeBroto  PizzaSize = "broto"
	SizeGrande PizzaSize = "grande"
)

func (s PizzaSize) Valid() bool {
	return s == SizeBroto || s == SizeGrande
}

type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Address       string          `json:"address"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Observations  string          `json:"observations,omitempty"`
	Items         []OrderLineItem `json:"items"`
	Status        Status          `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Total         decimal.Decimal `json:"total"`
	Discount      decimal.Decimal `json:"discount"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderUpdate carries the fields staff may change on a stored order.
// Nil fields are left untouched.
type OrderUpdate struct {
	Status        *Status
	PaymentStatus *PaymentStatus
}

type OrderLineItem struct {
	MenuItemID         string                   `json:"menu_item_id"`
	Name               string                   `json:"name"`
	Price              decimal.Decimal          `json:"price"`
	Quantity           int                      `json:"quantity"`
	SelectedVariations []SelectedVariationGroup `json:"selected_variations,omitempty"`
	IsHalfPizza        bool                     `json:"is_half_pizza,omitempty"`
	Combination        *Combination             `json:"combination,omitempty"`
	PriceFrom          bool                     `json:"price_from,omitempty"`
	Subtotal           decimal.Decimal          `json:"subtotal"`
}

type Combination struct {
	Flavor1ID   string    `json:"flavor1_id"`
	Flavor1Name string    `json:"flavor1_name,omitempty"`
	Flavor2ID   string    `json:"flavor2_id"`
	Flavor2Name string    `json:"flavor2_name,omitempty"`
	Size        PizzaSize `json:"size"`
}

type SelectedVariationGroup struct {
	GroupID    string              `json:"group_id"`
	GroupName  string              `json:"group_name"`
	Variations []SelectedVariation `json:"variations"`
}

type SelectedVariation struct {
	VariationID string          `json:"variation_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

type MenuItem struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	PriceFrom         bool            `json:"price_from"`
	CategoryID        string          `json:"category_id"`
	Available         bool            `json:"available"`
	IsPizza           bool            `json:"is_pizza"`
	VariationGroupIDs []string        `json:"variation_group_ids"`
	CreatedAt         time.Time       `json:"created_at"`
}

type VariationGroup struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	MinRequired   int      `json:"min_required"`
	MaxAllowed    int      `json:"max_allowed"`
	VariationIDs  []string `json:"variation_ids"`
	CustomMessage string   `json:"custom_message,omitempty"`
}

type Variation struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	Available       bool            `json:"available"`
	CategoryIDs     []string        `json:"category_ids"`
}

// Catalog is a point-in-time copy of the menu used for pricing.
type Catalog struct {
	MenuItems       []MenuItem       `json:"menu_items"`
	VariationGroups []VariationGroup `json:"variation_groups"`
	Variations      []Variation      `json:"variations"`
}

type CouponType string

const (
	CouponPercent CouponType = "percentual"
	CouponFixed   CouponType = "fixo"
)

type Coupon struct {
	ID            int             `json:"id"`
	Code          string          `json:"code"`
	Type          CouponType      `json:"type"`
	Value         decimal.Decimal `json:"value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	Active        bool            `json:"active"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	UsageLimit    *int            `json:"usage_limit,omitempty"`
	UsageCount    int             `json:"usage_count"`
	CreatedAt     time.Time       `json:"created_at"`
}
