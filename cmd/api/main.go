package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/webperf-id/seo-audit/internal/audit"
	"github.com/webperf-id/seo-audit/internal/platform/config"
	"github.com/webperf-id/seo-audit/internal/platform/logger"
	"github.com/webperf-id/seo-audit/internal/platform/middleware"
	"github.com/webperf-id/seo-audit/internal/seoaudit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	client := seoaudit.NewHTTPClient(cfg.FetchTimeout, cfg.UserAgent)
	engine := seoaudit.NewEngine(client, client, cfg.PublicHost)
	service := audit.NewService(engine, log)
	transport := audit.NewTransport(service, log)

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)

	handler := middleware.RequestID(middleware.Logging(log)(mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info("seo audit api listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
