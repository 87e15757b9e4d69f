package storage

import (
	"context"
	"time"

	"cardapio/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const counterTTL = 7 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ttl: counterTTL,
	}
}

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.Format("2006-01-02")
}

func DailyItemsKey(day time.Time) string {
	return "analytics:items:" + day.Format("2006-01-02")
}

// Cents converts a money amount to whole cents, rounding half away from zero.
func Cents(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// RecordOrderCreated counts the order, its amount due and the quantity of
// every menu item it carries.
func (s *Store) RecordOrderCreated(ctx context.Context, event domain.OrderEvent) error {
	day := event.Day()
	dailyKey := DailyKey(day)
	itemsKey := DailyItemsKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, dailyKey, "orders", 1)
		pipe.HIncrBy(ctx, dailyKey, "revenue_cents", Cents(event.AmountDue))
		if event.Status != "" {
			pipe.HIncrBy(ctx, dailyKey, "status:"+event.Status, 1)
		}
		pipe.Expire(ctx, dailyKey, s.ttl)

		if len(event.Items) > 0 {
			for _, item := range event.Items {
				pipe.ZIncrBy(ctx, itemsKey, float64(item.Quantity), item.MenuItemID)
			}
			pipe.Expire(ctx, itemsKey, s.ttl)
		}
		return nil
	})
	return err
}

// RecordStatusChange counts transitions into event.Status on the event's day.
func (s *Store) RecordStatusChange(ctx context.Context, event domain.OrderEvent) error {
	if event.Status == "" {
		return nil
	}
	dailyKey := DailyKey(event.Day())

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, dailyKey, "status:"+event.Status, 1)
		pipe.Expire(ctx, dailyKey, s.ttl)
		return nil
	})
	return err
}
