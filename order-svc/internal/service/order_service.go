package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutRequest struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	Address       string               `json:"address"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Observations  string               `json:"observations,omitempty"`
	CouponCode    string               `json:"coupon_code,omitempty"`
	Items         []LineDraft          `json:"items"`
}

func (r CheckoutRequest) validate() error {
	switch {
	case strings.TrimSpace(r.CustomerName) == "":
		return newValidationError("customer_name", "is required")
	case strings.TrimSpace(r.CustomerPhone) == "":
		return newValidationError("customer_phone", "is required")
	case strings.TrimSpace(r.Address) == "":
		return newValidationError("address", "is required")
	case !r.PaymentMethod.Valid():
		return newValidationError("payment_method", "unknown payment method %q", r.PaymentMethod)
	case len(r.Items) == 0:
		return newValidationError("items", "order must contain at least one item")
	}
	return nil
}

type OrderService struct {
	orders    OrderStore
	catalog   CatalogServiceInterface
	coupons   CouponServiceInterface
	publisher EventPublisher
	qrEncoder QRGenerator
	engine    StatusEngine
	now       func() time.Time
	logger    *zap.Logger
}

func NewOrderService(
	orders OrderStore,
	catalog CatalogServiceInterface,
	coupons CouponServiceInterface,
	publisher EventPublisher,
	qr QRGenerator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		coupons:   coupons,
		publisher: publisher,
		qrEncoder: qr,
		engine:    NewStatusEngine(),
		now:       time.Now,
		logger:    logger.Named("orders"),
	}
}

func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	quote, err := s.catalog.Quote(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	order := &domain.Order{
		ID:            uuid.NewString(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Address:       strings.TrimSpace(req.Address),
		PaymentMethod: req.PaymentMethod,
		Observations:  req.Observations,
		Items:         quote.Items,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		Total:         quote.Total,
		Discount:      decimal.Zero,
		AmountDue:     quote.Total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.PaymentMethod == domain.PaymentCard {
		order.PaymentStatus = domain.PaymentReceived
	}

	if strings.TrimSpace(req.CouponCode) != "" {
		applied, err := s.coupons.Apply(ctx, req.CouponCode, quote.Total)
		if err != nil {
			return nil, err
		}
		order.CouponCode = applied.Coupon.Code
		order.Discount = applied.Discount
		order.AmountDue = applied.FinalTotal
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.String("amount_due", order.AmountDue.StringFixed(2)))

	if order.CouponCode != "" {
		if err := s.coupons.Redeem(ctx, order.CouponCode); err != nil {
			s.logger.Error("coupon redeem failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	items := make([]domain.EventItem, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, domain.EventItem{MenuItemID: line.MenuItemID, Quantity: line.Quantity})
	}
	s.publish(ctx, domain.OrderEvent{
		Type:          domain.EventOrderCreated,
		OrderID:       order.ID,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		AmountDue:     order.AmountDue,
		Items:         items,
		Timestamp:     now,
	})
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, newValidationError("phone", "is required")
	}
	return s.orders.ListByPhone(ctx, phone)
}

func (s *OrderService) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	if to.Before(from) {
		return nil, newValidationError("to", "must not be before from")
	}
	return s.orders.ListByDateRange(ctx, from, to)
}

func (s *OrderService) NextStatuses(ctx context.Context, id string) ([]domain.Status, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.OrderOptions(order), nil
}

// UpdateStatus moves an order to target when the transition table allows it.
// Concurrent updates are not reconciled: the last write wins.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, target domain.Status) (*domain.Order, error) {
	if !target.Valid() {
		return nil, newValidationError("status", "unknown status %q", target)
	}
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	paid := s.engine.PaymentReceived(order.Status, order.PaymentMethod)
	if !s.engine.CanTransition(order.Status, target, paid, order.PaymentMethod) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, target)
	}

	update := domain.OrderUpdate{Status: &target}
	if target == domain.StatusReceived || target == domain.StatusPaid {
		received := domain.PaymentReceived
		update.PaymentStatus = &received
	}

	previous := order.Status
	updated, err := s.orders.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	s.logger.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(target)))

	s.publish(ctx, domain.OrderEvent{
		Type:           domain.EventStatusChanged,
		OrderID:        updated.ID,
		Status:         updated.Status,
		PreviousStatus: previous,
		PaymentMethod:  updated.PaymentMethod,
		AmountDue:      updated.AmountDue,
		Timestamp:      s.now().UTC(),
	})
	return updated, nil
}

func (s *OrderService) TrackingQRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("qr encoder not configured")
	}
	return s.qrEncoder.Generate(id)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("publish order event failed",
			zap.String("type", event.Type),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
	}
}
