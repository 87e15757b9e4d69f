package service

import (
	"context"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type MenuCatalogStore interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	ListVariations(ctx context.Context) ([]domain.Variation, error)
	ListVariationGroups(ctx context.Context) ([]domain.VariationGroup, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	CreateVariation(ctx context.Context, variation *domain.Variation) error
	CreateVariationGroup(ctx context.Context, group *domain.VariationGroup) error
}

// CatalogCache returns found=false on a miss.
type CatalogCache interface {
	Get(ctx context.Context) (catalog *domain.Catalog, found bool, err error)
	Set(ctx context.Context, catalog *domain.Catalog) error
	Invalidate(ctx context.Context) error
}

type OrderStore interface {
	Create(ctx context.Context, order *domain.Order) error
	// Update returns a nil order when id does not exist.
	Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.Order, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error)
}

type CouponStore interface {
	// FindByCode returns a nil coupon when no coupon matches.
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
	Create(ctx context.Context, coupon *domain.Coupon) error
	List(ctx context.Context) ([]domain.Coupon, error)
	IncrementUsage(ctx context.Context, code string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type AnalyticsReader interface {
	DailySummary(ctx context.Context, day time.Time) (domain.DailySummary, error)
}

type CatalogServiceInterface interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	ListVariations(ctx context.Context) ([]domain.Variation, error)
	ListVariationGroups(ctx context.Context) ([]domain.VariationGroup, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	CreateVariation(ctx context.Context, variation *domain.Variation) error
	CreateVariationGroup(ctx context.Context, group *domain.VariationGroup) error
	Quote(ctx context.Context, drafts []LineDraft) (Quote, error)
}

type CouponServiceInterface interface {
	Apply(ctx context.Context, code string, total decimal.Decimal) (*AppliedCoupon, error)
	Redeem(ctx context.Context, code string) error
	Create(ctx context.Context, coupon *domain.Coupon) error
	List(ctx context.Context) ([]domain.Coupon, error)
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.Order, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	NextStatuses(ctx context.Context, id string) ([]domain.Status, error)
	UpdateStatus(ctx context.Context, id string, target domain.Status) (*domain.Order, error)
	TrackingQRCode(ctx context.Context, id string) ([]byte, error)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ CouponServiceInterface  = (*CouponService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
