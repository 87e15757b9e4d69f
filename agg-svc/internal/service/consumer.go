package service

import (
	"context"
	"encoding/json"
	"errors"

	"cardapio/agg-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger.Named("consumer"),
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.logger().Info("starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger().Info("consumer stopped")
				return
			}
			c.logger().Error("read message failed", zap.Error(err))
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.logger().Warn("skipping malformed event",
				zap.ByteString("key", message.Key),
				zap.Error(err))
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	var err error
	switch event.Type {
	case domain.EventOrderCreated:
		err = c.Store.RecordOrderCreated(ctx, event)
	case domain.EventStatusChanged:
		err = c.Store.RecordStatusChange(ctx, event)
	default:
		c.logger().Debug("ignoring event", zap.String("type", event.Type))
		return
	}

	if err != nil {
		c.logger().Error("update counters failed",
			zap.String("type", event.Type),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return
	}
	c.logger().Debug("event processed",
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID))
}

func (c *Consumer) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
