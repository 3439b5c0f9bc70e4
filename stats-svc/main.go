package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"lunchtime/config"
	httpapi "lunchtime/stats-svc/internal/api/http"
	"lunchtime/stats-svc/internal/service"
	"lunchtime/stats-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	if cfg.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER is required for stats-svc")
	}

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewStatsService(store))
	if err := httpapi.StartServer(ctx, cfg.StatsHTTPAddr, httpapi.NewRouter(handler)); err != nil {
		log.Printf("[stats-svc] server error: %v", err)
	}
}
