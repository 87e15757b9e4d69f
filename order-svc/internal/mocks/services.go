package mocks

import (
	"context"
	"time"

	"cardapio/order-svc/internal/domain"
	"cardapio/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func NewCatalogService(t mock.TestingT) *CatalogService {
	m := &CatalogService{}
	m.Mock.Test(t)
	return m
}

func (_m *CatalogService) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	ret := _m.Called(ctx)
	var r0 *domain.Catalog
	if rf, ok := ret.Get(0).(*domain.Catalog); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CatalogService) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if rf, ok := ret.Get(0).([]domain.MenuItem); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CatalogService) ListVariations(ctx context.Context) ([]domain.Variation, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Variation
	if rf, ok := ret.Get(0).([]domain.Variation); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CatalogService) ListVariationGroups(ctx context.Context) ([]domain.VariationGroup, error) {
	ret := _m.Called(ctx)
	var r0 []domain.VariationGroup
	if rf, ok := ret.Get(0).([]domain.VariationGroup); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *CatalogService) CreateVariation(ctx context.Context, variation *domain.Variation) error {
	return _m.Called(ctx, variation).Error(0)
}

func (_m *CatalogService) CreateVariationGroup(ctx context.Context, group *domain.VariationGroup) error {
	return _m.Called(ctx, group).Error(0)
}

func (_m *CatalogService) Quote(ctx context.Context, drafts []service.LineDraft) (service.Quote, error) {
	ret := _m.Called(ctx, drafts)
	var r0 service.Quote
	if rf, ok := ret.Get(0).(service.Quote); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

type CouponService struct {
	mock.Mock
}

func NewCouponService(t mock.TestingT) *CouponService {
	m := &CouponService{}
	m.Mock.Test(t)
	return m
}

func (_m *CouponService) Apply(ctx context.Context, code string, total decimal.Decimal) (*service.AppliedCoupon, error) {
	ret := _m.Called(ctx, code, total)
	var r0 *service.AppliedCoupon
	if rf, ok := ret.Get(0).(*service.AppliedCoupon); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CouponService) Redeem(ctx context.Context, code string) error {
	return _m.Called(ctx, code).Error(0)
}

func (_m *CouponService) Create(ctx context.Context, coupon *domain.Coupon) error {
	return _m.Called(ctx, coupon).Error(0)
}

func (_m *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Coupon
	if rf, ok := ret.Get(0).([]domain.Coupon); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

type OrderService struct {
	mock.Mock
}

func NewOrderService(t mock.TestingT) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)
	return m
}

func (_m *OrderService) Checkout(ctx context.Context, req service.CheckoutRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Order
	if rf, ok := ret.Get(0).(*domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if rf, ok := ret.Get(0).(*domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderService) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	ret := _m.Called(ctx, phone)
	var r0 []domain.Order
	if rf, ok := ret.Get(0).([]domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderService) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	ret := _m.Called(ctx, from, to)
	var r0 []domain.Order
	if rf, ok := ret.Get(0).([]domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderService) NextStatuses(ctx context.Context, id string) ([]domain.Status, error) {
	ret := _m.Called(ctx, id)
	var r0 []domain.Status
	if rf, ok := ret.Get(0).([]domain.Status); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderService) UpdateStatus(ctx context.Context, id string, target domain.Status) (*domain.Order, error) {
	ret := _m.Called(ctx, id, target)
	var r0 *domain.Order
	if rf, ok := ret.Get(0).(*domain.Order); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *OrderService) TrackingQRCode(ctx context.Context, id string) ([]byte, error) {
	ret := _m.Called(ctx, id)
	var r0 []byte
	if rf, ok := ret.Get(0).([]byte); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}
