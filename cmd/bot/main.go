package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kavyabhat/scanlate/internal/config"
	"github.com/kavyabhat/scanlate/internal/handler"
	"github.com/kavyabhat/scanlate/internal/job"
	"github.com/kavyabhat/scanlate/internal/middleware"
	"github.com/kavyabhat/scanlate/internal/ocr"
	"github.com/kavyabhat/scanlate/internal/store"
	"github.com/kavyabhat/scanlate/internal/telegram"
	"github.com/kavyabhat/scanlate/internal/translate"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores and services
	creds := store.LoadCredentialStore(cfg.CredentialsPath())
	settings := store.NewSettingsStore()
	registry := job.NewRegistry()
	dispatcher := ocr.NewDispatcher(
		ocr.NewLocalEngine(),
		ocr.NewOnlineEngine(cfg.OCRWSUsername, cfg.OCRWSLicenseKey, cfg.OCRWSEndpoint),
	)
	translator := translate.NewTranslator()
	catalog := translate.NewGeminiCatalog()

	// Handler pointer for use in the default handler closure
	var h *handler.Handler

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			switch {
			case update.Message.Document != nil:
				h.HandleDocument(ctx, b, update)
			case len(update.Message.Photo) > 0:
				h.HandlePhoto(ctx, b, update)
			case update.Message.Text != "" && !strings.HasPrefix(update.Message.Text, "/"):
				h.HandleText(ctx, b, update)
			}
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
	}

	gateway := telegram.NewGateway(b)
	runner := job.NewRunner(registry, gateway)

	h = handler.New(handler.Deps{
		Bot:        b,
		Cfg:        cfg,
		Creds:      creds,
		Settings:   settings,
		Registry:   registry,
		Runner:     runner,
		Gateway:    gateway,
		OCR:        dispatcher,
		Translator: translator,
		Catalog:    catalog,
	})
	h.Register()

	slog.Info("starting bot")
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
