package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const catalogKey = "catalog:snapshot"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (*domain.Catalog, bool, error) {
	payload, err := c.Client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(payload, &catalog); err != nil {
		return nil, false, err
	}
	return &catalog, true, nil
}

func (c *RedisCache) Set(ctx context.Context, catalog *domain.Catalog) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, catalogKey).Err()
}

// RedisAnalytics reads the daily counters maintained by agg-svc.
type RedisAnalytics struct {
	Client *redis.Client
}

func NewRedisAnalytics(client *redis.Client) *RedisAnalytics {
	return &RedisAnalytics{Client: client}
}

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.Format("2006-01-02")
}

func DailyItemsKey(day time.Time) string {
	return "analytics:items:" + day.Format("2006-01-02")
}

func (a *RedisAnalytics) DailySummary(ctx context.Context, day time.Time) (domain.DailySummary, error) {
	summary := domain.DailySummary{
		Date:     day.Format("2006-01-02"),
		Revenue:  decimal.Zero,
		ByStatus: map[string]int64{},
		TopItems: []domain.ItemCount{},
	}

	fields, err := a.Client.HGetAll(ctx, DailyKey(day)).Result()
	if err != nil {
		return summary, err
	}
	for field, value := range fields {
		switch {
		case field == "orders":
			summary.Orders, _ = strconv.ParseInt(value, 10, 64)
		case field == "revenue_cents":
			if cents, err := strconv.ParseInt(value, 10, 64); err == nil {
				summary.Revenue = decimal.New(cents, -2)
			}
		case strings.HasPrefix(field, "status:"):
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				summary.ByStatus[strings.TrimPrefix(field, "status:")] = n
			}
		}
	}

	top, err := a.Client.ZRevRangeWithScores(ctx, DailyItemsKey(day), 0, 9).Result()
	if err != nil {
		return summary, err
	}
	for _, member := range top {
		id, _ := member.Member.(string)
		summary.TopItems = append(summary.TopItems, domain.ItemCount{MenuItemID: id, Quantity: member.Score})
	}
	return summary, nil
}
