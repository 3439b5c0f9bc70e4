package main

import (
	"log"
	"net/http"

	"lunchtime/api-gateway/internal/gateway"
	"lunchtime/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.MustLoad()

	gw := gateway.NewGateway(gateway.Config{
		LunchSvcURL: cfg.LunchSvcURL,
		StatsSvcURL: cfg.StatsSvcURL,
		FrontendDir: cfg.FrontendDir,
	}, &http.Client{Timeout: cfg.HTTPTimeout})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Session-ID"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Printf("API Gateway starting on %s", cfg.GatewayHTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.GatewayHTTPAddr, handler))
}
