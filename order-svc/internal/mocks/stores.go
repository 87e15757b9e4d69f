package mocks

import (
	"context"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MenuCatalogStore struct {
	mock.Mock
}

func NewMenuCatalogStore(t mock.TestingT) *MenuCatalogStore {
	m := &MenuCatalogStore{}
	m.Mock.Test(t)
	return m
}

func (_m *MenuCatalogStore) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if rf, ok := ret.Get(0).([]domain.MenuItem); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *MenuCatalogStore) ListVariations(ctx context.Context) ([]domain.Variation, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Variation
	if rf, ok := ret.Get(0).([]domain.Variation); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *MenuCatalogStore) ListVariationGroups(ctx context.Context) ([]domain.VariationGroup, error) {
	ret := _m.Called(ctx)
	var r0 []domain.VariationGroup
	if rf, ok := ret.Get(0).([]domain.VariationGroup); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *MenuCatalogStore) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *MenuCatalogStore) CreateVariation(ctx context.Context, variation *domain.Variation) error {
	return _m.Called(ctx, variation).Error(0)
}

func (_m *MenuCatalogStore) CreateVariationGroup(ctx context.Context, group *domain.VariationGroup) error {
	return _m.Called(ctx, group).Error(0)
}

type CatalogCache struct {
	mock.Mock
}

func NewCatalogCache(t mock.TestingT) *CatalogCache {
	m := &CatalogCache{}
	m.Mock.Test(t)
	return m
}

func (_m *CatalogCache) Get(ctx context.Context) (*domain.Catalog, bool, error) {
	ret := _m.Called(ctx)
	var r0 *domain.Catalog
	if rf, ok := ret.Get(0).(*domain.Catalog); ok {
		r0 = rf
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *CatalogCache) Set(ctx context.Context, catalog *domain.Catalog) error {
	return _m.Called(ctx, catalog).Error(0)
}

func (_m *CatalogCache) Invalidate(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

type OrderStore struct {
	mock.Mock
}

func NewOrderStore(t mock.TestingT) *OrderStore {
	m := &OrderStore{}
	m.Mock.Test(t)
	return m
}

func (_m *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	return _m.Called(ctx, order).Error(0)
}

func (_m *OrderStore) Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	ret := _m.Called(ctx, id, update)
	var r0 *domain.Order
	if rf, ok := ret.Get(0).(*domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if rf, ok := ret.Get(0).(*domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	ret := _m.Called(ctx, phone)
	var r0 []domain.Order
	if rf, ok := ret.Get(0).([]domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	ret := _m.Called(ctx, from, to)
	var r0 []domain.Order
	if rf, ok := ret.Get(0).([]domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

type CouponStore struct {
	mock.Mock
}

func NewCouponStore(t mock.TestingT) *CouponStore {
	m := &CouponStore{}
	m.Mock.Test(t)
	return m
}

func (_m *CouponStore) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	ret := _m.Called(ctx, code)
	var r0 *domain.Coupon
	if rf, ok := ret.Get(0).(*domain.Coupon); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CouponStore) Create(ctx context.Context, coupon *domain.Coupon) error {
	return _m.Called(ctx, coupon).Error(0)
}

func (_m *CouponStore) List(ctx context.Context) ([]domain.Coupon, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Coupon
	if rf, ok := ret.Get(0).([]domain.Coupon); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CouponStore) IncrementUsage(ctx context.Context, code string) error {
	return _m.Called(ctx, code).Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t mock.TestingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	return m
}

func (_m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

type AnalyticsReader struct {
	mock.Mock
}

func NewAnalyticsReader(t mock.TestingT) *AnalyticsReader {
	m := &AnalyticsReader{}
	m.Mock.Test(t)
	return m
}

func (_m *AnalyticsReader) DailySummary(ctx context.Context, day time.Time) (domain.DailySummary, error) {
	ret := _m.Called(ctx, day)
	var r0 domain.DailySummary
	if rf, ok := ret.Get(0).(domain.DailySummary); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t mock.TestingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	return m
}

func (_m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if rf, ok := ret.Get(0).([]byte); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}
