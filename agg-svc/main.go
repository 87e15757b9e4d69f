package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cardapio/agg-svc/internal/service"
	"cardapio/agg-svc/internal/storage"
	"cardapio/config"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, cfg.OrderEventsTopic, "agg-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
