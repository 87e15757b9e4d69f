package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// CouponDiscount returns the amount a coupon takes off total, never more
// than total and never negative.
func CouponDiscount(coupon domain.Coupon, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	var discount decimal.Decimal
	switch coupon.Type {
	case domain.CouponPercent:
		discount = total.Mul(coupon.Value).Div(hundred)
	case domain.CouponFixed:
		discount = coupon.Value
	default:
		return decimal.Zero
	}
	if discount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(discount, total).Round(2)
}

type AppliedCoupon struct {
	Coupon     domain.Coupon   `json:"coupon"`
	Total      decimal.Decimal `json:"total"`
	Discount   decimal.Decimal `json:"discount"`
	FinalTotal decimal.Decimal `json:"final_total"`
}

type CouponService struct {
	store  CouponStore
	now    func() time.Time
	logger *zap.Logger
}

func NewCouponService(store CouponStore, logger *zap.Logger) *CouponService {
	return &CouponService{store: store, now: time.Now, logger: logger.Named("coupons")}
}

// WithClock replaces the time source used for expiry checks.
func (s *CouponService) WithClock(now func() time.Time) *CouponService {
	s.now = now
	return s
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Apply checks, in order: existence, activation, expiry, minimum order value
// and usage limit. The first failing check rejects the coupon.
func (s *CouponService) Apply(ctx context.Context, code string, total decimal.Decimal) (*AppliedCoupon, error) {
	code = NormalizeCouponCode(code)
	if code == "" {
		return nil, &CouponRejectedError{Code: code, Reason: CouponNotFound}
	}

	coupon, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	reject := func(reason CouponRejectReason) (*AppliedCoupon, error) {
		s.logger.Info("coupon rejected", zap.String("code", code), zap.String("reason", string(reason)))
		return nil, &CouponRejectedError{Code: code, Reason: reason}
	}

	switch {
	case coupon == nil:
		return reject(CouponNotFound)
	case !coupon.Active:
		return reject(CouponInactive)
	case coupon.ExpiresAt != nil && s.now().After(*coupon.ExpiresAt):
		return reject(CouponExpired)
	case total.LessThan(coupon.MinOrderValue):
		return reject(CouponBelowMinimum)
	case coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit:
		return reject(CouponUsageExhausted)
	}

	discount := CouponDiscount(*coupon, total)
	return &AppliedCoupon{
		Coupon:     *coupon,
		Total:      total,
		Discount:   discount,
		FinalTotal: total.Sub(discount),
	}, nil
}

func (s *CouponService) Redeem(ctx context.Context, code string) error {
	return s.store.IncrementUsage(ctx, NormalizeCouponCode(code))
}

func (s *CouponService) Create(ctx context.Context, coupon *domain.Coupon) error {
	coupon.Code = NormalizeCouponCode(coupon.Code)
	if err := coupon.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return s.store.Create(ctx, coupon)
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.store.List(ctx)
}
