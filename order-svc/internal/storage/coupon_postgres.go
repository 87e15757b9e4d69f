package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardapio/order-svc/internal/domain"
)

// ErrCouponNotRedeemable is returned when the coupon does not exist or its
// usage limit has been reached.
var ErrCouponNotRedeemable = errors.New("coupon not found or usage limit reached")

type CouponRepository struct {
	DB *sql.DB
}

func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

const couponColumns = `id, code, type, value, min_order_value, active, expires_at, usage_limit, usage_count, created_at`

// FindByCode matches codes case-insensitively. It returns a nil coupon when
// nothing matches and wraps domain.ErrMalformedRecord for unusable rows.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.DB.QueryRowContext(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE UPPER(code) = UPPER($1)`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := coupon.Validate(); err != nil {
		return nil, fmt.Errorf("%w: coupon %s: %v", domain.ErrMalformedRecord, coupon.Code, err)
	}
	return coupon, nil
}

func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	var usageLimit sql.NullInt64
	if coupon.UsageLimit != nil {
		usageLimit = sql.NullInt64{Int64: int64(*coupon.UsageLimit), Valid: true}
	}
	var expiresAt sql.NullTime
	if coupon.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *coupon.ExpiresAt, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO coupons (code, type, value, min_order_value, active, expires_at, usage_limit, usage_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		RETURNING id, created_at`,
		coupon.Code, coupon.Type, coupon.Value, coupon.MinOrderValue, coupon.Active, expiresAt, usageLimit,
	).Scan(&coupon.ID, &coupon.CreatedAt)
}

func (r *CouponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := []domain.Coupon{}
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		if coupon.Validate() != nil {
			continue
		}
		coupons = append(coupons, *coupon)
	}
	return coupons, rows.Err()
}

// IncrementUsage counts one redemption. usage_count never exceeds
// usage_limit, even across concurrent checkouts.
func (r *CouponRepository) IncrementUsage(ctx context.Context, code string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE coupons SET usage_count = usage_count + 1
		WHERE UPPER(code) = UPPER($1)
			AND (usage_limit IS NULL OR usage_count < usage_limit)`, code)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrCouponNotRedeemable, code)
	}
	return nil
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var c domain.Coupon
	var expiresAt sql.NullTime
	var usageLimit sql.NullInt64
	if err := row.Scan(&c.ID, &c.Code, &c.Type, &c.Value, &c.MinOrderValue, &c.Active,
		&expiresAt, &usageLimit, &c.UsageCount, &c.CreatedAt); err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		c.ExpiresAt = &t
	}
	if usageLimit.Valid {
		limit := int(usageLimit.Int64)
		c.UsageLimit = &limit
	}
	return &c, nil
}
