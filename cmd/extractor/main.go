package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/leasedesk/internal/config"
	leaseHttp "github.com/MrJamesThe3rd/leasedesk/internal/http"
	extractHandler "github.com/MrJamesThe3rd/leasedesk/internal/http/extract"
	"github.com/MrJamesThe3rd/leasedesk/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	router := leaseHttp.NewExtractor(extractHandler.NewHandler())

	port := fmt.Sprintf(":%d", cfg.Extractor.Port)
	slog.Info("starting extractor", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("extractor failed", "error", err)
		os.Exit(1)
	}
}
