package main

import (
	"context"

	"cardapio/config"
	httpapi "cardapio/order-svc/internal/api/http"
	"cardapio/order-svc/internal/service"
	"cardapio/order-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()

	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg, cfg.OrderEventsTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	catalog := service.NewCatalogService(repo, storage.NewRedisCache(rdb, cfg.CatalogCacheTTL), logger)
	coupons := service.NewCouponService(storage.NewCouponRepository(db), logger)
	orders := service.NewOrderService(
		repo,
		catalog,
		coupons,
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		logger,
	)

	handler := httpapi.NewHandler(catalog, coupons, orders, storage.NewRedisAnalytics(rdb))
	if err := httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler, logger), logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
