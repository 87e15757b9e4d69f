package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var couponRowColumns = []string{"id", "code", "type", "value", "min_order_value", "active", "expires_at", "usage_limit", "usage_count", "created_at"}

func TestCouponRepository_FindByCode(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(48 * time.Hour)

	tests := []struct {
		name              string
		rows      *sqlmock.Rows
		wantNil   bool
		wantErr   error
		checkFunc func(*testing.T, *domain.Coupon)
	}{
		{
			name: "coupon with limits",
			rows: sqlmock.NewRows(couponRowColumns).
				AddRow(7, "PROMO10", "percentual", "10.00", "30.00", true, expires, 100, 12, now),
			checkFunc: func(t *testing.T, c *domain.Coupon) {
				assert.Equal(t, 7, c.ID)
				assert.Equal(t, domain.CouponPercent, c.Type)
				require.NotNil(t, c.ExpiresAt)
				assert.True(t, c.ExpiresAt.Equal(expires))
				require.NotNil(t, c.UsageLimit)
				assert.Equal(t, 100, *c.UsageLimit)
				assert.Equal(t, 12, c.UsageCount)
			},
		},
		{
			name: "coupon without limits",
			rows: sqlmock.NewRows(couponRowColumns).
				AddRow(8, "PROMO10", "fixo", "5.00", "0", true, nil, nil, 0, now),
			checkFunc: func(t *testing.T, c *domain.Coupon) {
				assert.Nil(t, c.ExpiresAt)
				assert.Nil(t, c.UsageLimit)
				assert.Equal(t, "5.00", c.Value.StringFixed(2))
			},
		},
		{
			name:    "no match",
			rows:    sqlmock.NewRows(couponRowColumns),
			wantNil: true,
		},
		{
			name: "unknown type is malformed",
			rows: sqlmock.NewRows(couponRowColumns).
				AddRow(9, "PROMO10", "brinde", "5.00", "0", true, nil, nil, 0, now),
			wantNil: true,
			wantErr: domain.ErrMalformedRecord,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewCouponRepository(db)
			mock.ExpectQuery("WHERE UPPER\\(code\\) = UPPER\\(\\$1\\)").
				WithArgs("promo10").
				WillReturnRows(testCase.rows)

			coupon, err := repo.FindByCode(context.Background(), "promo10")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if testCase.wantNil {
				assert.Nil(t, coupon)
			} else {
				require.NotNil(t, coupon)
				testCase.checkFunc(t, coupon)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCouponRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCouponRepository(db)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	limit := 50

	coupon := &domain.Coupon{
		Code:          "BEMVINDO",
		Type:          domain.CouponFixed,
		Value:         decimal.RequireFromString("10"),
		MinOrderValue: decimal.RequireFromString("40"),
		Active:        true,
		UsageLimit:    &limit,
	}

	mock.ExpectQuery("INSERT INTO coupons").
		WithArgs("BEMVINDO", "fixo", "10", "40", true, nil, int64(50)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	require.NoError(t, repo.Create(context.Background(), coupon))
	assert.Equal(t, 3, coupon.ID)
	assert.Equal(t, now, coupon.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_ListSkipsMalformed(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCouponRepository(db)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM coupons ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(couponRowColumns).
			AddRow(1, "A", "percentual", "10", "0", true, nil, nil, 0, now).
			AddRow(2, "B", "percentual", "150", "0", true, nil, nil, 0, now).
			AddRow(3, "C", "fixo", "4", "0", false, nil, 2, 2, now))

	coupons, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "A", coupons[0].Code)
	assert.Equal(t, "C", coupons[1].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_ListScanError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectQuery("FROM coupons").
		WillReturnRows(sqlmock.NewRows(couponRowColumns).
			AddRow(1, "A", "percentual", "dez", "0", true, nil, nil, 0, time.Now()))

	coupons, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, coupons)
}

func TestCouponRepository_IncrementUsage(t *testing.T) {
	tests := []struct {
		name              string
		setupMock         func(sqlmock.Sqlmock)
		wantErr           bool
		wantNotRedeemable bool
	}{
		{
			name: "existing coupon under its limit",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE coupons SET usage_count = usage_count \\+ 1 " +
					"WHERE UPPER\\(code\\) = UPPER\\(\\$1\\) " +
					"AND \\(usage_limit IS NULL OR usage_count < usage_limit\\)").
					WithArgs("PROMO10").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown or exhausted coupon",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("AND \\(usage_limit IS NULL OR usage_count < usage_limit\\)").
					WithArgs("PROMO10").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:           true,
			wantNotRedeemable: true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE coupons").WillReturnError(errors.New("deadlock"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewCouponRepository(db)
			testCase.setupMock(mock)

			err := repo.IncrementUsage(context.Background(), "PROMO10")

			if testCase.wantErr {
				assert.Error(t, err)
				assert.Equal(t, testCase.wantNotRedeemable, errors.Is(err, ErrCouponNotRedeemable))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
