package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"lunchtime/config"
	httpapi "lunchtime/lunch-svc/internal/api/http"
	"lunchtime/lunch-svc/internal/service"
	"lunchtime/lunch-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	rulesFile, err := config.LoadComboRules(cfg.ComboRulesFile)
	if err != nil {
		log.Fatal("Failed to load combo rules:", err)
	}
	rules, err := service.NewComboRules(rulesFile)
	if err != nil {
		log.Fatal("Invalid combo rules:", err)
	}
	log.Printf("[lunch-svc] combo rules: discount=%d required=%v auto=%v", rules.Discount, rules.Required, rules.Auto)

	var store service.StateStore
	switch cfg.StateBackend {
	case "memory":
		store = storage.NewMemoryStateStore()
	default:
		store = storage.NewRedisStateStore(config.MustInitRedis(cfg))
	}

	mockAPI := storage.NewMockAPIClient(cfg.MockAPIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[lunch-svc] failed to flush order events: %v", err)
			}
		}()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menuSvc := service.NewMenuService(mockAPI, store, rules, service.NewAutoComboPicker(rules))
	checkoutSvc := service.NewCheckoutService(mockAPI, mockAPI, store, publisher, service.NewOrderSubmissionAdapter(rules), rules)
	ordersSvc := service.NewOrdersService(mockAPI, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})

	handler := httpapi.NewHandler(menuSvc, checkoutSvc, ordersSvc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, httpapi.NewRouter(handler)); err != nil {
		log.Printf("[lunch-svc] server error: %v", err)
	}
}
