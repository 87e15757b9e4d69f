package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio/order-svc/internal/domain"
	"cardapio/order-svc/internal/mocks"
	"cardapio/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestCouponDiscount(t *testing.T) {
	tests := []struct {
		name         string
		coupon       domain.Coupon
		total        string
		wantDiscount string
	}{
		{
			name:         "percent",
			coupon:       domain.Coupon{Type: domain.CouponPercent, Value: money("20")},
			total:        "100",
			wantDiscount: "20.00",
		},
		{
			name:         "fixed clamped to total",
			coupon:       domain.Coupon{Type: domain.CouponFixed, Value: money("50")},
			total:        "10",
			wantDiscount: "10.00",
		},
		{
			name:         "fixed below total",
			coupon:       domain.Coupon{Type: domain.CouponFixed, Value: money("7.5")},
			total:        "30",
			wantDiscount: "7.50",
		},
		{
			name:         "percent rounds to cents",
			coupon:       domain.Coupon{Type: domain.CouponPercent, Value: money("15")},
			total:        "33.33",
			wantDiscount: "5.00",
		},
		{
			name:         "unknown type gives nothing",
			coupon:       domain.Coupon{Type: "bogus", Value: money("10")},
			total:        "30",
			wantDiscount: "0.00",
		},
		{
			name:         "zero total",
			coupon:       domain.Coupon{Type: domain.CouponFixed, Value: money("10")},
			total:        "0",
			wantDiscount: "0.00",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := service.CouponDiscount(testCase.coupon, money(testCase.total))
			assert.Equal(t, testCase.wantDiscount, got.StringFixed(2))
		})
	}
}

func TestCouponDiscount_NeverExceedsTotal(t *testing.T) {
	totals := []string{"0.01", "1", "9.99", "10", "57.35", "100", "1000"}
	coupons := []domain.Coupon{
		{Type: domain.CouponPercent, Value: money("0")},
		{Type: domain.CouponPercent, Value: money("33")},
		{Type: domain.CouponPercent, Value: money("100")},
		{Type: domain.CouponFixed, Value: money("0")},
		{Type: domain.CouponFixed, Value: money("5")},
		{Type: domain.CouponFixed, Value: money("500")},
	}

	for _, raw := range totals {
		total := money(raw)
		for _, coupon := range coupons {
			discount := service.CouponDiscount(coupon, total)
			assert.False(t, discount.IsNegative(), "total=%s coupon=%+v", raw, coupon)
			assert.True(t, discount.LessThanOrEqual(total), "total=%s coupon=%+v", raw, coupon)
		}
	}
}

func TestCouponService_Apply(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		code       string
		total      string
		coupon     *domain.Coupon
		wantReason service.CouponRejectReason
		wantFinal  string
	}{
		{
			name:      "percent coupon applied",
			code:      " promo20 ",
			total:     "100",
			coupon:    &domain.Coupon{Code: "PROMO20", Type: domain.CouponPercent, Value: money("20"), Active: true},
			wantFinal: "80.00",
		},
		{
			name:      "fixed coupon clamps to zero",
			code:      "PROMO20",
			total:     "10",
			coupon:    &domain.Coupon{Code: "PROMO20", Type: domain.CouponFixed, Value: money("50"), Active: true},
			wantFinal: "0.00",
		},
		{
			name:       "missing coupon",
			code:       "PROMO20",
			total:      "100",
			wantReason: service.CouponNotFound,
		},
		{
			name:       "inactive wins over expiry",
			code:       "PROMO20",
			total:      "100",
			coupon:     &domain.Coupon{Code: "PROMO20", Type: domain.CouponFixed, Value: money("5"), Active: false, ExpiresAt: timePtr(now.Add(-time.Hour))},
			wantReason: service.CouponInactive,
		},
		{
			name:       "expired wins over minimum",
			code:       "PROMO20",
			total:      "10",
			coupon:     &domain.Coupon{Code: "PROMO20", Type: domain.CouponFixed, Value: money("5"), Active: true, ExpiresAt: timePtr(now.Add(-time.Minute)), MinOrderValue: money("50")},
			wantReason: service.CouponExpired,
		},
		{
			name:       "below minimum wins over usage",
			code:       "PROMO20",
			total:      "10",
			coupon:     &domain.Coupon{Code: "PROMO20", Type: domain.CouponFixed, Value: money("5"), Active: true, MinOrderValue: money("50"), UsageLimit: intPtr(1), UsageCount: 1},
			wantReason: service.CouponBelowMinimum,
		},
		{
			name:       "usage exhausted",
			code:       "PROMO20",
			total:      "100",
			coupon:     &domain.Coupon{Code: "PROMO20", Type: domain.CouponFixed, Value: money("5"), Active: true, UsageLimit: intPtr(3), UsageCount: 3},
			wantReason: service.CouponUsageExhausted,
		},
		{
			name:      "not yet expired and under limit",
			code:      "promo20",
			total:     "50",
			coupon:    &domain.Coupon{Code: "PROMO20", Type: domain.CouponFixed, Value: money("5"), Active: true, ExpiresAt: timePtr(now.Add(time.Hour)), MinOrderValue: money("50"), UsageLimit: intPtr(3), UsageCount: 2},
			wantFinal: "45.00",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewCouponStore(t)
			store.On("FindByCode", mock.Anything, "PROMO20").Return(testCase.coupon, nil).Once()

			svc := service.NewCouponService(store, zap.NewNop()).WithClock(func() time.Time { return now })
			applied, err := svc.Apply(context.Background(), testCase.code, money(testCase.total))

			if testCase.wantReason != "" {
				var rejected *service.CouponRejectedError
				require.True(t, errors.As(err, &rejected), "got %v", err)
				assert.Equal(t, testCase.wantReason, rejected.Reason)
				assert.NotEmpty(t, rejected.Error())
				assert.Nil(t, applied)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.wantFinal, applied.FinalTotal.StringFixed(2))
				assert.True(t, applied.Total.Equal(applied.Discount.Add(applied.FinalTotal)))
			}
			store.AssertExpectations(t)
		})
	}
}

func TestCouponService_ApplyEmptyCode(t *testing.T) {
	store := mocks.NewCouponStore(t)
	svc := service.NewCouponService(store, zap.NewNop())

	_, err := svc.Apply(context.Background(), "   ", money("10"))

	var rejected *service.CouponRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, service.CouponNotFound, rejected.Reason)
	store.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}

func TestCouponService_ApplyStoreError(t *testing.T) {
	store := mocks.NewCouponStore(t)
	store.On("FindByCode", mock.Anything, "X").Return(nil, assert.AnError).Once()
	svc := service.NewCouponService(store, zap.NewNop())

	_, err := svc.Apply(context.Background(), "x", money("10"))

	assert.ErrorIs(t, err, assert.AnError)
	var rejected *service.CouponRejectedError
	assert.False(t, errors.As(err, &rejected))
}

func TestCouponService_Create(t *testing.T) {
	tests := []struct {
		name      string
		coupon    *domain.Coupon
		mockError error
		wantErr   bool
		wantValid bool
	}{
		{
			name:   "valid coupon is normalized and stored",
			coupon: &domain.Coupon{Code: " bemvindo ", Type: domain.CouponPercent, Value: money("10"), Active: true},
		},
		{
			name:      "percentage above 100",
			coupon:    &domain.Coupon{Code: "X", Type: domain.CouponPercent, Value: money("120")},
			wantErr:   true,
			wantValid: true,
		},
		{
			name:      "unknown type",
			coupon:    &domain.Coupon{Code: "X", Type: "brinde", Value: money("1")},
			wantErr:   true,
			wantValid: true,
		},
		{
			name:      "database error",
			coupon:    &domain.Coupon{Code: "X", Type: domain.CouponFixed, Value: money("1")},
			mockError: assert.AnError,
			wantErr:   true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewCouponStore(t)
			if !testCase.wantValid {
				store.On("Create", mock.Anything, testCase.coupon).Return(testCase.mockError).Once()
			}
			svc := service.NewCouponService(store, zap.NewNop())

			err := svc.Create(context.Background(), testCase.coupon)

			if !testCase.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "BEMVINDO", testCase.coupon.Code)
			} else {
				assert.Error(t, err)
				var validationErr *service.ValidationError
				assert.Equal(t, testCase.wantValid, errors.As(err, &validationErr))
			}
			store.AssertExpectations(t)
		})
	}
}

func TestCouponService_Redeem(t *testing.T) {
	store := mocks.NewCouponStore(t)
	store.On("IncrementUsage", mock.Anything, "PROMO").Return(nil).Once()
	svc := service.NewCouponService(store, zap.NewNop())

	assert.NoError(t, svc.Redeem(context.Background(), "promo"))
	store.AssertExpectations(t)
}
