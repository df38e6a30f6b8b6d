package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	authStore "github.com/MrJamesThe3rd/leasedesk/internal/auth/store"
	"github.com/MrJamesThe3rd/leasedesk/internal/config"
	contractStore "github.com/MrJamesThe3rd/leasedesk/internal/contract/store"
	"github.com/MrJamesThe3rd/leasedesk/internal/database"
	leaseHttp "github.com/MrJamesThe3rd/leasedesk/internal/http"
	authHandler "github.com/MrJamesThe3rd/leasedesk/internal/http/auth"
	contractHandler "github.com/MrJamesThe3rd/leasedesk/internal/http/contract"
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

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		authService = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		extractor   = api.NewExtractor(cfg.Extractor.URL, api.New("", nil, cfg.Extractor.Timeout))
	)

	var (
		authH     = authHandler.NewHandler(authService)
		contractH = contractHandler.NewHandler(contractStore.New(db), extractor)
	)

	router := leaseHttp.New(authH, contractH, cfg.CORS.Origins)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     router,
		ReadTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
