package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedRecord marks stored records that cannot be priced safely.
var ErrMalformedRecord = errors.New("malformed record")

var hundred = decimal.NewFromInt(100)

func (c Coupon) Validate() error {
	switch {
	case c.Code == "":
		return errors.New("code is required")
	case c.Type != CouponPercent && c.Type != CouponFixed:
		return fmt.Errorf("type must be %q or %q", CouponPercent, CouponFixed)
	case c.Value.IsNegative():
		return errors.New("value cannot be negative")
	case c.Type == CouponPercent && c.Value.GreaterThan(hundred):
		return errors.New("percentage must be between 0 and 100")
	case c.MinOrderValue.IsNegative():
		return errors.New("min_order_value cannot be negative")
	case c.UsageLimit != nil && *c.UsageLimit < 0:
		return errors.New("usage_limit cannot be negative")
	}
	return nil
}

func (m MenuItem) Validate() error {
	switch {
	case m.Name == "":
		return errors.New("name is required")
	case m.Price.IsNegative():
		return errors.New("price cannot be negative")
	}
	return nil
}

func (v Variation) Validate() error {
	switch {
	case v.Name == "":
		return errors.New("name is required")
	case v.AdditionalPrice.IsNegative():
		return errors.New("additional_price cannot be negative")
	}
	return nil
}

func (g VariationGroup) Validate() error {
	switch {
	case g.Name == "":
		return errors.New("name is required")
	case g.MinRequired < 0:
		return errors.New("min_required cannot be negative")
	case g.MaxAllowed < 1:
		return errors.New("max_allowed must be at least 1")
	case g.MinRequired > g.MaxAllowed:
		return errors.New("min_required cannot exceed max_allowed")
	}
	return nil
}
