package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/config"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/logger"
	"github.com/MrJamesThe3rd/leasedesk/internal/notify"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	loc, err := time.LoadLocation(cfg.Notifier.TZ)
	if err != nil {
		slog.Error("invalid NOTIFY_TZ", "tz", cfg.Notifier.TZ, "error", err)
		os.Exit(1)
	}

	tokens := session.New("")
	if err := tokens.Set(cfg.Notifier.APIToken, nil); err != nil {
		slog.Error("failed to set api token", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.API.BaseURL, tokens, 30*time.Second)
	contracts := contract.NewService(api.NewContractRepository(client)).
		WithClock(func() time.Time { return time.Now().In(loc) })

	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)

	notifier, err := notify.New(contracts, dialer, notify.Options{
		DaysBefore: cfg.Notifier.DaysBefore,
		From:       cfg.SMTP.From,
		To:         cfg.Notifier.To,
	})
	if err != nil {
		slog.Error("failed to create notifier", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("notifier started", "tz", loc.String(), "hour", cfg.Notifier.Hour, "days_before", cfg.Notifier.DaysBefore)

	if err := notifier.Run(ctx, cfg.Notifier.Hour, loc); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("notifier stopped", "error", err)
		os.Exit(1)
	}
}
